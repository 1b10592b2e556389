package game

import (
	"fmt"
	"log"

	"gazeray/internal/components"
	"gazeray/internal/engine"
	"gazeray/internal/interaction"
	"gazeray/internal/scripts"
	"gazeray/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Player    *engine.GameObject
	Driver    *interaction.Driver
	World     *world.World
	ScenePath string

	// HUD state
	hudMode       bool // cursor released for the HUD, look/move disabled
	showIndicator bool
	lastEvent     string
	enterCount    int
}

func New(scenePath string) *Game {
	return &Game{
		World:         world.New(),
		ScenePath:     scenePath,
		showIndicator: true,
		lastEvent:     "-",
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "gazeray - raycast interaction")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	g.Setup()
	defer g.World.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

// Setup loads the scene, adds the player rig and starts the world.
func (g *Game) Setup() {
	if err := g.World.LoadScene(g.ScenePath); err != nil {
		log.Printf("Scene: %v, using built-in layout", err)
		g.buildFallbackScene()
	}
	g.watchDwellTriggers()
	g.createPlayer()
	g.World.Start()
}

func (g *Game) watchDwellTriggers() {
	for _, obj := range g.World.Scene.GameObjects {
		dwell := engine.GetComponent[*scripts.DwellTrigger](obj)
		if dwell == nil {
			continue
		}
		name := obj.Name
		dwell.Activated.AddListener(func() {
			g.lastEvent = "activated " + name
			log.Printf("Scene: %s activated by dwell", name)
		})
	}
}

func (g *Game) createPlayer() {
	g.Player = engine.NewGameObject("Player")
	g.Player.Transform.Position = rl.Vector3{X: 0, Y: 0, Z: 4}

	fps := components.NewFPSController()
	g.Player.AddComponent(fps)
	g.Player.AddComponent(components.NewCamera())

	g.Driver = interaction.NewDriver(interaction.DefaultConfig())
	g.Driver.TargetChanged.AddListener(func(target *engine.GameObject) {
		if target == nil {
			g.lastEvent = "exit"
			return
		}
		g.enterCount++
		g.lastEvent = "enter " + target.Name
	})
	g.Player.AddComponent(g.Driver)

	g.World.SpawnObject(g.Player)
}

func (g *Game) buildFallbackScene() {
	floor := engine.NewGameObject("Floor")
	floor.Tags = []string{"static"}
	floor.Transform.Position = rl.Vector3{Y: -0.05}
	floorSize := rl.Vector3{X: 40, Y: 0.1, Z: 40}
	floor.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.LightGray, floorSize))
	floor.AddComponent(components.NewBoxCollider(floorSize))
	g.World.SpawnObject(floor)

	colors := []rl.Color{rl.Red, rl.Blue, rl.Purple}
	for i, color := range colors {
		cube := engine.NewGameObject(fmt.Sprintf("Cube_%d", i))
		cube.Tags = []string{"interactable"}
		cube.Transform.Position = rl.Vector3{X: float32(i-1) * 3, Y: 1, Z: -6}
		size := rl.Vector3{X: 1.5, Y: 1.5, Z: 1.5}
		cube.AddComponent(components.NewMeshRenderer(components.MeshCube, color, size))
		cube.AddComponent(components.NewBoxCollider(size))
		cube.AddComponent(interaction.NewHighlighter(rl.Color{}))
		g.World.SpawnObject(cube)
	}
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyTab) {
		g.hudMode = !g.hudMode
		if g.hudMode {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.Driver.DebugRay = !g.Driver.DebugRay
	}
	if fps := engine.GetComponent[*components.FPSController](g.Player); fps != nil {
		fps.Input = !g.hudMode
	}

	g.World.Update(deltaTime)
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.Camera](g.Player)
	if cam == nil {
		return
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(cam.GetRaylibCamera())
	g.World.Draw()
	rl.EndMode3D()

	g.drawCrosshair()
	g.DrawHUD()
	rl.EndDrawing()
}

func (g *Game) drawCrosshair() {
	cx := int32(rl.GetScreenWidth() / 2)
	cy := int32(rl.GetScreenHeight() / 2)
	color := g.Driver.MissColor
	if _, ok := g.Driver.LastHit(); ok {
		color = g.Driver.HitColor
	}
	rl.DrawLine(cx-8, cy, cx+8, cy, color)
	rl.DrawLine(cx, cy-8, cx, cy+8, color)
}

func (g *Game) DrawHUD() {
	rl.DrawText("WASD to move, mouse to look, Tab for cursor, F1 debug ray", 10, 10, 20, rl.RayWhite)
	rl.DrawFPS(10, 35)

	panel := rl.Rectangle{X: 10, Y: 60, Width: 300, Height: 172}
	gui.Panel(panel, "Gaze")

	target := "none"
	if obj := g.Driver.CurrentObject(); obj != nil {
		target = obj.Name
	}
	hitText := "miss"
	if hit, ok := g.Driver.LastHit(); ok {
		hitText = fmt.Sprintf("%s (%.1f, %.1f, %.1f)", hit.Target.Name, hit.Point.X, hit.Point.Y, hit.Point.Z)
	}

	row := func(i int) rl.Rectangle {
		return rl.Rectangle{X: panel.X + 10, Y: panel.Y + 30 + float32(i)*22, Width: panel.Width - 20, Height: 20}
	}
	gui.Label(row(0), "State: "+g.Driver.State().String())
	gui.Label(row(1), "Target: "+target)
	gui.Label(row(2), "Hit: "+hitText)
	gui.Label(row(3), fmt.Sprintf("Last: %s (%d enters)", g.lastEvent, g.enterCount))

	check := row(4)
	check.Width, check.Height = 16, 16
	g.showIndicator = gui.CheckBox(check, "Show ray", g.showIndicator)
	if line, ok := g.Driver.Indicator.(*components.LineRenderer); ok {
		line.Enabled = g.showIndicator
	}

	if dwell := engine.GetComponent[*scripts.DwellTrigger](g.Driver.CurrentObject()); dwell != nil {
		bar := row(5)
		rl.DrawRectangleLinesEx(bar, 1, rl.Gray)
		bar.Width *= dwell.Progress()
		rl.DrawRectangleRec(bar, rl.Fade(g.Driver.HitColor, 0.6))
	}
}
