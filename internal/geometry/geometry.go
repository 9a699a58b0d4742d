// Package geometry turns one progress scalar into the transforms that place the
// drawer and the content. Everything here is pure.
package geometry

import (
	"github.com/jask/drawer/internal/anim"
	"github.com/jask/drawer/internal/visibility"
)

const (
	// MinContentScale is the content scale when the drawer is fully open.
	MinContentScale = 0.85
	// DrawerSlide is how far below its resting place the drawer starts.
	DrawerSlide = 50.0
)

// Each transform only moves inside its own slice of the progress range, so the
// content shrinks first, then slides, and the drawer fades in last.
var (
	slideRange  = [2]float64{0, 0.5}
	scaleRange  = [2]float64{0, 0.25}
	drawerRange = [2]float64{0.3, 1}
)

// Transforms is what a renderer applies for one progress value.
type Transforms struct {
	ContentTranslateX float64
	ContentScale      float64
	DrawerOffsetY     float64
	DrawerOpacity     float64
	// DecorationBlend mixes from no decoration (0) to the configured one (1).
	DecorationBlend float64
}

// Mapper holds the immutable inputs of Map.
type Mapper struct {
	Width             float64
	OpenRatio         float64
	Curve             anim.Curve
	AnimateDecoration bool
}

// Map computes transforms for progress p. Out-of-range p is clamped.
func (m Mapper) Map(p float64) Transforms {
	p = anim.Clamp01(p)
	curve := m.Curve
	if curve == nil {
		curve = anim.Linear
	}
	drawer := Subrange(p, drawerRange[0], drawerRange[1], curve)
	scale := Lerp(1, MinContentScale, Subrange(p, scaleRange[0], scaleRange[1], curve))

	blend := 1.0
	if m.AnimateDecoration {
		blend = anim.Clamp01((1 - scale) / (1 - MinContentScale))
	}
	return Transforms{
		ContentTranslateX: Lerp(0, m.Width*m.OpenRatio, Subrange(p, slideRange[0], slideRange[1], curve)),
		ContentScale:      scale,
		DrawerOffsetY:     Lerp(DrawerSlide, 0, drawer),
		DrawerOpacity:     Lerp(0, 1, drawer),
		DecorationBlend:   blend,
	}
}

// Subrange renormalises p from [a,b] to [0,1], clamps, then applies curve.
func Subrange(p, a, b float64, curve anim.Curve) float64 {
	if b <= a {
		if p >= b {
			return 1
		}
		return 0
	}
	return anim.Clamp01(curve(anim.Clamp01((p - a) / (b - a))))
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// TapCatcher reports whether taps on the content should close the drawer. It
// follows the settled value, not progress.
func TapCatcher(v visibility.Value) bool {
	return v.Visible
}
