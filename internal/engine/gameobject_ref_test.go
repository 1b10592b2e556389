package engine

import "testing"

func TestGameObjectRefGet(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Target")
	scene.AddGameObject(obj)

	ref := RefTo(obj)

	if found := ref.Get(scene); found != obj {
		t.Errorf("Get() failed: expected %v, got %v", obj, found)
	}
	if !ref.Refers(obj) {
		t.Error("Refers should match the referenced object")
	}
}

func TestGameObjectRefGetNil(t *testing.T) {
	scene := NewScene("Test")

	if (GameObjectRef{}).Get(scene) != nil {
		t.Error("Get() with UID=0 should return nil")
	}
	if (GameObjectRef{UID: 99999}).Get(scene) != nil {
		t.Error("Get() with non-existent UID should return nil")
	}
	if (GameObjectRef{UID: 123}).Get(nil) != nil {
		t.Error("Get() with nil scene should return nil")
	}
	if RefTo(nil).IsValid() {
		t.Error("RefTo(nil) should be empty")
	}
}

func TestGameObjectRefIsWeak(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Doomed")
	scene.AddGameObject(obj)
	ref := RefTo(obj)

	scene.Destroy(obj)

	if ref.Get(scene) != nil {
		t.Error("reference should not resolve after the object is destroyed")
	}
	if !ref.IsValid() {
		t.Error("IsValid only reports a non-empty handle")
	}
}

func TestGameObjectRefDistinctObjects(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Twin")
	obj2 := NewGameObject("Twin")
	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	ref1 := RefTo(obj1)
	ref2 := RefTo(obj2)

	if ref1 == ref2 {
		t.Error("identically named objects must have distinct references")
	}
	if ref1.Refers(obj2) {
		t.Error("ref1 should not refer to obj2")
	}

	ref1.Clear()
	if ref1.IsValid() {
		t.Error("Clear should empty the reference")
	}
}
