package world

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gazeray/internal/components"
	"gazeray/internal/engine"
	"gazeray/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Parent     string            `json:"parent,omitempty"`
	Active     *bool             `json:"active,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type  string     `json:"type"`
	Mesh  string     `json:"mesh"`
	Size  [3]float32 `json:"size"`
	Color string     `json:"color"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Loading ---

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	return w.LoadSceneData(data)
}

// LoadSceneData adds the objects described by data to the world. Unknown
// component types and unregistered scripts are skipped with a log line.
// Parents must appear before their children.
func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	byName := make(map[string]*engine.GameObject, len(sf.Objects))
	for i, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		if objDef.Active != nil {
			g.Active = *objDef.Active
		}
		g.Transform.Position = vec(objDef.Position)
		g.Transform.Rotation = vec(objDef.Rotation)

		// Default scale to 1 if zero
		if objDef.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = vec(objDef.Scale)
		}

		for _, raw := range objDef.Components {
			if err := loadComponent(g, raw); err != nil {
				return fmt.Errorf("object %d (%s): %w", i, objDef.Name, err)
			}
		}

		if objDef.Parent != "" {
			parent, ok := byName[objDef.Parent]
			if !ok {
				return fmt.Errorf("object %d (%s): unknown parent %q", i, objDef.Name, objDef.Parent)
			}
			parent.AddChild(g)
		}
		byName[objDef.Name] = g

		w.SpawnObject(g)
	}

	return nil
}

func loadComponent(g *engine.GameObject, raw json.RawMessage) error {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return fmt.Errorf("component header: %w", err)
	}

	switch header.Type {
	case "MeshRenderer":
		var def meshRendererDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("MeshRenderer: %w", err)
		}
		color := rl.White
		if def.Color != "" {
			c, err := components.ParseColor(def.Color)
			if err != nil {
				return fmt.Errorf("MeshRenderer: %w", err)
			}
			color = c
		}
		g.AddComponent(components.NewMeshRenderer(components.ParseMeshType(def.Mesh), color, vec(def.Size)))
	case "BoxCollider":
		var def boxColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("BoxCollider: %w", err)
		}
		box := components.NewBoxCollider(vec(def.Size))
		box.Offset = vec(def.Offset)
		g.AddComponent(box)
	case "SphereCollider":
		var def sphereColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("SphereCollider: %w", err)
		}
		sphere := components.NewSphereCollider(def.Radius)
		sphere.Offset = vec(def.Offset)
		g.AddComponent(sphere)
	case "Script":
		var def scriptDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("Script: %w", err)
		}
		c := engine.CreateScript(def.Name, def.Props)
		if c == nil {
			log.Printf("Scene: unknown script %q on %s, skipping", def.Name, g.Name)
			return nil
		}
		g.AddComponent(c)
	default:
		log.Printf("Scene: unknown component type %q on %s, skipping", header.Type, g.Name)
	}
	return nil
}

// --- Saving ---

// SaveScene writes the scene back out in the format LoadScene reads. The
// default indicator line is left out since drivers recreate it on start.
func (w *World) SaveScene(path string) error {
	data, err := w.MarshalScene()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func (w *World) MarshalScene() ([]byte, error) {
	sf := SceneFile{Objects: make([]ObjectDef, 0, len(w.Scene.GameObjects))}
	for _, g := range w.Scene.GameObjects {
		if g.HasTag(interaction.GeneratedTag) {
			continue
		}
		def := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
			Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
			Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
		}
		if !g.Active {
			inactive := false
			def.Active = &inactive
		}
		if g.Parent != nil {
			def.Parent = g.Parent.Name
		}
		for _, c := range g.Components() {
			raw, err := marshalComponent(c)
			if err != nil {
				return nil, fmt.Errorf("marshal %s: %w", g.Name, err)
			}
			if raw != nil {
				def.Components = append(def.Components, raw)
			}
		}
		sf.Objects = append(sf.Objects, def)
	}
	return json.MarshalIndent(sf, "", "  ")
}

func marshalComponent(c engine.Component) (json.RawMessage, error) {
	var v any
	switch c := c.(type) {
	case *components.MeshRenderer:
		v = meshRendererDef{Type: "MeshRenderer", Mesh: meshName(c.MeshType), Size: [3]float32{c.Size.X, c.Size.Y, c.Size.Z}, Color: components.ColorName(c.Color)}
	case *components.BoxCollider:
		v = boxColliderDef{Type: "BoxCollider", Size: [3]float32{c.Size.X, c.Size.Y, c.Size.Z}, Offset: [3]float32{c.Offset.X, c.Offset.Y, c.Offset.Z}}
	case *components.SphereCollider:
		v = sphereColliderDef{Type: "SphereCollider", Radius: c.Radius, Offset: [3]float32{c.Offset.X, c.Offset.Y, c.Offset.Z}}
	default:
		name, props, ok := engine.SerializeScript(c)
		if !ok {
			return nil, nil
		}
		v = scriptDef{Type: "Script", Name: name, Props: props}
	}
	return json.Marshal(v)
}

func meshName(t components.MeshType) string {
	switch t {
	case components.MeshSphere:
		return "sphere"
	case components.MeshPlane:
		return "plane"
	default:
		return "cube"
	}
}
