package colorfour

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/colorfour/internal/core"
)

// Spark is one celebration particle, in screen cells.
type Spark struct {
	X, Y   float64
	DX, DY float64 // Cells per frame
	Size   int     // 0..2, picks the glyph
	Color  core.Color
}

var sparkGlyphs = []rune{'·', '*', '✦'}

// Sparkle is the win celebration: particles scattered over the screen,
// drifting for a fixed number of frames.
type Sparkle struct {
	sparks   []Spark
	frame    int
	frames   int
	interval time.Duration
	acc      time.Duration
}

// NewSparkle scatters count sparks over a w×h area.
func NewSparkle(rng *rand.Rand, count, frames int, interval time.Duration, w, h int) *Sparkle {
	s := &Sparkle{
		sparks:   make([]Spark, count),
		frames:   frames,
		interval: interval,
	}
	for i := range s.sparks {
		s.sparks[i] = Spark{
			X:     rng.Float64() * float64(w),
			Y:     rng.Float64() * float64(h),
			DX:    (rng.Float64() - 0.5) * 2,
			DY:    rng.Float64() - 0.5, // Cells are twice as tall as wide
			Size:  rng.Intn(len(sparkGlyphs)),
			Color: core.SparkColors[rng.Intn(len(core.SparkColors))],
		}
	}
	return s
}

// Advance moves the animation forward by dt.
// Returns false once all frames have been shown.
func (s *Sparkle) Advance(dt time.Duration) bool {
	s.acc += dt
	for s.acc >= s.interval && s.frame < s.frames {
		s.acc -= s.interval
		s.frame++
		for i := range s.sparks {
			s.sparks[i].X += s.sparks[i].DX
			s.sparks[i].Y += s.sparks[i].DY
		}
	}
	return s.frame < s.frames
}

// Frame returns how many frames have elapsed.
func (s *Sparkle) Frame() int {
	return s.frame
}

// Sparks returns the particles.
func (s *Sparkle) Sparks() []Spark {
	return s.sparks
}

// Render draws the sparks that are still on screen.
func (s *Sparkle) Render(dst *core.Screen) {
	for _, sp := range s.sparks {
		dst.SetColored(int(sp.X), int(sp.Y), sparkGlyphs[sp.Size], sp.Color)
	}
}
