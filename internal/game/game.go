// Package game implements the main game loop: camera movement, cube
// picking and editing, and frame rendering.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelheim/internal/config"
	"github.com/Faultbox/voxelheim/internal/engine/camera"
	"github.com/Faultbox/voxelheim/internal/engine/input"
	"github.com/Faultbox/voxelheim/internal/engine/renderer"
	"github.com/Faultbox/voxelheim/internal/engine/voxel"
	"github.com/Faultbox/voxelheim/internal/engine/window"
	"github.com/Faultbox/voxelheim/internal/logger"
	"github.com/Faultbox/voxelheim/pkg/math"
)

// Game is the main game instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.FlyCamera
	world    *voxel.World

	// background color channels bounce between bounds at different rates;
	// newly placed voxels take the current background color
	bg     [3]float32
	bgStep [3]float32

	meshStale bool
}

// New creates a game instance. The window and GL context are created here,
// so this must run on the main thread.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("fill_height", cfg.World.FillHeight),
		zap.Int("platform_radius", cfg.World.PlatformRadius),
	)

	g := &Game{
		cfg:    cfg,
		bg:     [3]float32{0.30, 0.50, 0.75},
		bgStep: [3]float32{0.031, 0.017, 0.023},
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Voxelheim",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.world = voxel.NewWorld(logger.Log)
	g.camera = camera.New(
		math.Vec3{X: 8, Y: float32(cfg.World.FillHeight) + 4, Z: 8},
		cfg.Input.MouseSensitivity,
		cfg.Input.MoveSpeed,
	)

	g.bootstrapWorld()
	g.window.CaptureMouse(true)

	logger.Info("game initialized", zap.Int("chunks", g.world.ChunkCount()))
	return g, nil
}

// bootstrapWorld fills a square platform of chunk columns around the origin.
func (g *Game) bootstrapWorld() {
	r := g.cfg.World.PlatformRadius
	color := voxel.Color(g.cfg.World.GroundColor)
	for cz := -r; cz <= r; cz++ {
		for cx := -r; cx <= r; cx++ {
			g.world.FillRegion(cx*voxel.ChunkWidth, g.cfg.World.FillHeight, cz*voxel.ChunkDepth, color)
		}
	}
	g.meshStale = true
}

// Run starts the main game loop and blocks until quit.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		if w, h, ok := g.input.Resized(); ok {
			g.renderer.Resize(w, h)
		}

		g.update(dt)
		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) update(dt float32) {
	g.animateBackground(dt)

	dx, dy := g.input.MouseDelta()
	g.camera.HandleMouse(dx, dy)

	forward, right, up := g.input.MoveAxes()
	g.camera.Move(forward, right, up, dt)

	if !g.input.LeftClicked() && !g.input.RightClicked() {
		return
	}

	trace := g.world.CubeLookingAt(g.camera.Position, g.camera.Front(), g.cfg.Input.Reach)
	if trace.Found == nil {
		return
	}

	if g.input.LeftClicked() {
		v := trace.Found.Voxel
		g.world.Remove(v[0], v[1], v[2])
		g.meshStale = true
	}
	if g.input.RightClicked() {
		v := trace.Found.Voxel
		d := trace.Found.IncomingDirection
		x, y, z := v[0]+d[0], v[1]+d[1], v[2]+d[2]
		// A placement straight into the traced cube has no free face.
		if d != [3]int{} && y >= 0 && y < voxel.ChunkHeight {
			g.world.Place(x, y, z, voxel.Color{g.bg[0], g.bg[1], g.bg[2], 1})
			g.meshStale = true
		}
	}
}

// animateBackground bounces each channel between bounds at its own rate.
func (g *Game) animateBackground(dt float32) {
	for i := range g.bg {
		g.bg[i] += g.bgStep[i] * dt
		if g.bg[i] > 0.85 {
			g.bg[i] = 0.85
			g.bgStep[i] = -g.bgStep[i]
		}
		if g.bg[i] < 0.15 {
			g.bg[i] = 0.15
			g.bgStep[i] = -g.bgStep[i]
		}
	}
}

func (g *Game) render() {
	if g.meshStale {
		g.renderer.SetInstances(g.world.Mesh())
		g.meshStale = false
	}

	g.renderer.Begin(g.bg)

	w, h := g.window.GetSize()
	viewProj := g.camera.ProjectionMatrix(g.cfg.Graphics.FOVDegrees, w, h).
		Mul(g.camera.ViewMatrix())

	g.renderer.Draw(viewProj)

	trace := g.world.CubeLookingAt(g.camera.Position, g.camera.Front(), g.cfg.Input.Reach)
	if trace.Found != nil {
		g.renderer.DrawHighlight(viewProj, trace.Found.Voxel)
	}
}
