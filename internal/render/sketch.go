package render

import (
	"image"
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Timing for one card's display cycle.
const (
	fadeInDuration  = 500 * time.Millisecond
	holdDuration    = 500 * time.Millisecond
	fadeOutDuration = 500 * time.Millisecond
	cycleDuration   = fadeInDuration + holdDuration + fadeOutDuration
)

// Spinner geometry.
const (
	spinnerBars      = 80
	spinnerBarWidth  = 20
	spinnerBarHeight = 50
)

// Sketch drives the interactive preview window: a spinner while a
// background goroutine pre-renders every card, then a fade-in, hold,
// fade-out cycle per card. Each card's full-opacity frame is saved to
// disk before the index advances; the window closes after the last card.
type Sketch struct {
	renderer *Renderer
	outDir   string
	fps      int32
}

// NewSketch creates an interactive preview for the renderer's cards.
func NewSketch(renderer *Renderer, outDir string, fps int) *Sketch {
	return &Sketch{
		renderer: renderer,
		outDir:   outDir,
		fps:      int32(fps),
	}
}

// Run opens the window and blocks until every card has been shown and
// saved, or the user closes the window.
func (s *Sketch) Run() error {
	cards := make([]*image.RGBA, len(SurahNames))
	loaded := make(chan error, 1)

	go func() {
		for i := range SurahNames {
			img, err := s.renderer.Card(i, 255)
			if err != nil {
				loaded <- err

				return
			}

			cards[i] = img
		}

		loaded <- nil
	}()

	rl.InitWindow(CardSize, CardSize, "surah drawables")
	defer rl.CloseWindow()
	rl.SetTargetFPS(s.fps)

	background := toRaylibColor(BackgroundColor())

	var textures []rl.Texture2D

	defer func() {
		for _, tex := range textures {
			rl.UnloadTexture(tex)
		}
	}()

	loading := true

	var angle float32

	index := 0

	var cycleStart time.Time

	for !rl.WindowShouldClose() {
		if loading {
			select {
			case err := <-loaded:
				if err != nil {
					return err
				}

				for _, img := range cards {
					textures = append(textures, rl.LoadTextureFromImage(rl.NewImageFromImage(img)))
				}

				loading = false
				cycleStart = time.Now()
			default:
			}

			rl.BeginDrawing()
			rl.ClearBackground(background)
			drawSpinner(&angle)
			rl.EndDrawing()

			continue
		}

		elapsed := time.Since(cycleStart)

		var alpha float32

		switch {
		case elapsed < fadeInDuration:
			alpha = float32(elapsed) / float32(fadeInDuration)
		case elapsed < fadeInDuration+holdDuration:
			alpha = 1
		case elapsed < cycleDuration:
			fadeOut := elapsed - fadeInDuration - holdDuration
			alpha = 1 - float32(fadeOut)/float32(fadeOutDuration)
		default:
			// Save the full-opacity frame before advancing
			if err := s.renderer.SaveCard(index, cards[index], s.outDir); err != nil {
				return err
			}

			cycleStart = cycleStart.Add(cycleDuration)
			index++
			alpha = 0

			if index >= len(cards) {
				return nil
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(background)
		rl.DrawTexture(textures[index], 0, 0, rl.Fade(rl.White, alpha))
		rl.EndDrawing()
	}

	return nil
}

// drawSpinner draws a ring of bars fading around the rotation angle.
func drawSpinner(angle *float32) {
	center := float32(CardSize) / 2
	radius := float32(CardSize)/4 - spinnerBarHeight - 10

	for i := 0; i < spinnerBars; i++ {
		theta := *angle + float32(i)*2*math.Pi/spinnerBars
		alpha := 1 - float32(i)/spinnerBars

		x := center + radius*float32(math.Cos(float64(theta)))
		y := center + radius*float32(math.Sin(float64(theta)))

		bar := rl.NewRectangle(x, y, spinnerBarHeight, spinnerBarWidth)
		origin := rl.NewVector2(0, spinnerBarWidth/2)
		rotation := theta * 180 / math.Pi

		rl.DrawRectanglePro(bar, origin, rotation, rl.Fade(rl.White, alpha))
	}

	// Half a degree of rotation per frame at the original's 60fps pacing
	*angle -= (2 * math.Pi / 60) * 0.5
}

func toRaylibColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
