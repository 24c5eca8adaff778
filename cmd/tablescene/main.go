package main

import (
	"errors"
	"flag"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"tablescene/internal/assets"
	"tablescene/internal/debug"
	"tablescene/internal/render"
	"tablescene/internal/scene"
	"tablescene/internal/utils"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene document (YAML); built-in tabletop scene when empty")
		width     = flag.Int("width", 1280, "window width")
		height    = flag.Int("height", 720, "window height")
		check     = flag.Bool("check", false, "validate the scene without opening a window and exit")
		showDebug = flag.Bool("debug", false, "draw the debug overlay")
		logLevel  = flag.String("log-level", "info", "debug, info, warn or error")
		assetRoot = flag.String("assets", "", "extra search root for scene and texture files")
	)
	flag.Parse()

	utils.CurrentLevel = utils.ParseLogLevel(*logLevel)
	utils.AssetRoot = *assetRoot

	doc, err := loadScene(*scenePath)
	if err != nil {
		utils.Error("%v", err)
		os.Exit(1)
	}

	if *check {
		os.Exit(runCheck(doc))
	}
	runWindow(doc, *width, *height, *showDebug)
}

func loadScene(path string) (*scene.Document, error) {
	if path == "" {
		shipped := utils.ResolveAssetPath("scenes/tabletop.yaml")
		if _, err := os.Stat(shipped); errors.Is(err, os.ErrNotExist) {
			return scene.Tabletop(), nil
		}
		path = shipped
	}
	return scene.LoadFile(utils.ResolveAssetPath(path))
}

// runCheck performs scene setup and one full draw pass against the
// recording backend: every texture decodes for real, every tag resolves (or
// is counted as a miss), no GPU required.
func runCheck(doc *scene.Document) int {
	recorder := render.NewRecorder()
	reg := assets.NewRegistry()
	scene.Prepare(doc, reg, recorder, recorder.Sink)

	applier := render.NewStateApplier(reg, recorder.Sink)
	stats := scene.Render(doc, applier, recorder)

	utils.Info("Check: %d draws, %d texture slots, %d tag misses",
		stats.Draws, reg.TextureCount(), stats.TagMisses)
	if stats.TagMisses > 0 || reg.TextureCount() < len(doc.Textures) {
		return 1
	}
	return 0
}

func runWindow(doc *scene.Document, width, height int, showDebug bool) {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.InitWindow(int32(width), int32(height), "tablescene - "+doc.Name)
	defer rl.CloseWindow()

	backend := render.NewRaylibBackend()
	defer backend.Unload()

	reg := assets.NewRegistry()
	scene.Prepare(doc, reg, backend, backend)
	applier := render.NewStateApplier(reg, backend)

	camera := rl.Camera3D{
		Position:   rl.NewVector3(0, 5.5, 14),
		Target:     rl.NewVector3(0, 2, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}

	clear := rl.NewColor(
		uint8(doc.ClearColor[0]*255),
		uint8(doc.ClearColor[1]*255),
		uint8(doc.ClearColor[2]*255),
		uint8(doc.ClearColor[3]*255),
	)

	var overlay debug.Overlay
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraOrbital)
		backend.SetVec3(render.UniformViewPos, mgl32.Vec3{
			camera.Position.X, camera.Position.Y, camera.Position.Z,
		})

		rl.BeginDrawing()
		rl.ClearBackground(clear)

		rl.BeginMode3D(camera)
		stats := scene.Render(doc, applier, backend)
		rl.EndMode3D()

		if showDebug {
			overlay.Draw(stats, reg)
		}
		rl.EndDrawing()
	}
}
