// planetarium - Terminal procedural planet viewer
// A software-rendered tour of shader-built worlds, in your terminal.
//
// Controls:
//
//	1-4         - Switch planet (rocky, gas giant, crystal, lava)
//	Mouse drag  - Orbit camera (yaw/pitch)
//	Right drag  - Pan camera target
//	Scroll      - Zoom in/out
//	P           - Save screenshot (WebP)
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/planetarium/pkg/math3d"
	"github.com/taigrr/planetarium/pkg/models"
	"github.com/taigrr/planetarium/pkg/render"
	"github.com/taigrr/planetarium/pkg/shading"
)

var (
	targetFPS     = flag.Int("fps", 60, "Target FPS")
	bgColor       = flag.String("bg", "0,0,0", "Background color (R,G,B)")
	modelPath     = flag.String("model", "", "Planet mesh (.obj or .glb); generated sphere if omitted or unreadable")
	screenshotDir = flag.String("screenshot-dir", ".", "Directory for screenshots")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "planetarium - Terminal procedural planet viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: planetarium [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  1-4         - Switch planet\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  Right drag  - Pan\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom\n")
		fmt.Fprintf(os.Stderr, "  P           - Screenshot\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// OrbitAxis tracks one camera axis velocity with spring decay, so a
// mouse fling keeps the planet turning briefly after release.
type OrbitAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

// NewOrbitAxis creates an axis critically damped at the frame rate.
func NewOrbitAxis(fps int) OrbitAxis {
	return OrbitAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update decays velocity toward 0 and returns the pre-decay value.
func (a *OrbitAxis) Update() float64 {
	v := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return v
}

// Planet is one catalog entry plus its accumulated spin.
type Planet struct {
	Entry    shading.Entry
	Rotation float64
}

func (p *Planet) Update(dt float64) {
	p.Rotation += p.Entry.RotationSpeed * dt
}

// HUD renders the overlay with planet info and frame rate.
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	visible   bool
}

func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now(), visible: true}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD rows directly with ANSI escapes, over the frame
// the terminal renderer just flushed.
func (h *HUD) Render(width, height int, planet *Planet) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !h.visible {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	name := planet.Entry.Name
	nameCol := max((width-len(name)-2)/2, 1)
	fmt.Printf("%s%s%s%s %s %s", moveTo(1, nameCol), bold, bgBlack, fgYellow, name, reset)

	fmt.Printf("%s%s%s%s 1-4: planets  drag: orbit  scroll: zoom  p: screenshot %s",
		moveTo(height, 1), bgBlack, dim, fgWhite, reset)

	features := planet.Entry.Features
	featCol := max(width-len(features)-2, 1)
	fmt.Printf("%s%s%s %s %s", moveTo(height, featCol), bgBlack, dim, features, reset)
}

func run() error {
	var bgR, bgG, bgB uint8
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Any-event mouse tracking plus SGR extended coordinates.
	fmt.Fprint(os.Stdout, "\x1b[?1003h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	pipeline := render.NewPipeline(fb)

	camera := render.NewCamera()

	mesh := models.LoadOrSphere(*modelPath)

	planets := make([]*Planet, 0, 4)
	for _, entry := range shading.Catalog() {
		planets = append(planets, &Planet{Entry: entry})
	}
	current := 0

	hud := NewHUD()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Per-frame input accumulators, filled by the event goroutine and
	// drained by the frame loop.
	yawAxis := NewOrbitAxis(*targetFPS)
	pitchAxis := NewOrbitAxis(*targetFPS)
	var wheelAccum float64
	var panDX, panDY float64
	var panning bool
	var screenshotRequested bool

	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				pipeline = render.NewPipeline(fb)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("1"):
					current = 0
				case ev.MatchString("2"):
					current = 1
				case ev.MatchString("3"):
					current = 2
				case ev.MatchString("4"):
					current = 3
				case ev.MatchString("p"):
					screenshotRequested = true
				case ev.MatchString("+", "="):
					wheelAccum += 1
				case ev.MatchString("-", "_"):
					wheelAccum -= 1
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					hud.visible = !hud.visible
				}

			case uv.MouseClickEvent:
				switch ev.Button {
				case uv.MouseRight:
					panning = true
				default:
					mouseDown = true
				}
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false
				panning = false

			case uv.MouseMotionEvent:
				dx := float64(ev.X - lastMouseX)
				dy := float64(ev.Y - lastMouseY)
				if mouseDown {
					yawAxis.Velocity += dx * 0.4
					// Terminal cells are twice as tall as wide.
					pitchAxis.Velocity += dy * 0.8
				} else if panning {
					panDX += dx
					panDY += dy
				}
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					wheelAccum += 0.5
				case uv.MouseWheelDown:
					wheelAccum -= 0.5
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()
	start := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		input := render.InputState{
			PointerDX:  yawAxis.Update(),
			PointerDY:  pitchAxis.Update(),
			WheelDelta: wheelAccum,
			RotateHeld: true,
			DT:         dt,
		}
		wheelAccum = 0
		if panDX != 0 || panDY != 0 {
			input.PanHeld = true
			input.PointerDX, input.PointerDY = panDX, panDY
			input.RotateHeld = false
			panDX, panDY = 0, 0
		}
		camera.Update(input)

		planet := planets[current]
		planet.Update(dt)

		uniforms := shading.Uniforms{
			Time:           time.Since(start).Seconds(),
			LightDirection: math3d.V3(1, 1, 1).Normalize(),
			CameraPosition: camera.Eye,
		}

		fb.Clear(render.RGB(bgR, bgG, bgB))
		pipeline.SetView(camera, math.Pi/4, 0.1, 100)
		pipeline.DrawMesh(mesh, planet.Entry.Shader, planet.Rotation, &uniforms)
		if planet.Entry.HasRings {
			pipeline.DrawRings(shading.Ring{}, &uniforms)
		}
		if planet.Entry.HasMoon {
			pipeline.DrawMoon(shading.Moon{}, &uniforms)
		}

		if screenshotRequested {
			screenshotRequested = false
			name := fmt.Sprintf("planet-%s.webp", time.Now().Format("20060102-150405"))
			if err := fb.SaveWebP(filepath.Join(*screenshotDir, name)); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: screenshot failed: %v\n", err)
			}
		}

		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		hud.UpdateFPS()
		hud.Render(width, height, planet)

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
