package anim

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownCurve is returned by CurveByName for names it does not know.
var ErrUnknownCurve = errors.New("unknown curve")

// Curve maps a time fraction in [0,1] to an eased fraction. Curves must map 0
// to 0 and 1 to 1.
type Curve func(t float64) float64

var (
	Linear        Curve = func(t float64) float64 { return Clamp01(t) }
	Ease                = Cubic(0.25, 0.1, 0.25, 1.0)
	EaseIn              = Cubic(0.42, 0, 1, 1)
	EaseOut             = Cubic(0, 0, 0.58, 1)
	EaseInOut           = Cubic(0.42, 0, 0.58, 1)
	FastOutSlowIn       = Cubic(0.4, 0, 0.2, 1)
	Decelerate    Curve = func(t float64) float64 {
		t = Clamp01(t)
		return 1 - (1-t)*(1-t)
	}
)

var curvesByName = map[string]Curve{
	"linear":        Linear,
	"ease":          Ease,
	"easein":        EaseIn,
	"easeout":       EaseOut,
	"easeinout":     EaseInOut,
	"fastoutslowin": FastOutSlowIn,
	"decelerate":    Decelerate,
}

// CurveNames lists the names CurveByName accepts, sorted.
func CurveNames() []string {
	out := make([]string, 0, len(curvesByName))
	for k := range curvesByName {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CurveByName resolves a curve name. Case, dashes, underscores and spaces are
// ignored, so "ease-in-out" and "EaseInOut" are the same curve.
func CurveByName(name string) (Curve, error) {
	key := normalizeCurveName(name)
	if c, ok := curvesByName[key]; ok {
		return c, nil
	}
	if s := suggestCurve(key); s != "" {
		return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownCurve, name, s)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownCurve, name)
}

func normalizeCurveName(name string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return r.Replace(strings.ToLower(strings.TrimSpace(name)))
}

func suggestCurve(key string) string {
	if key == "" {
		return ""
	}
	best, bestDist := "", 4
	for _, name := range CurveNames() {
		if d := levenshtein.ComputeDistance(key, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// Cubic returns the CSS-style cubic-bezier curve through (0,0), (x1,y1),
// (x2,y2), (1,1). x1 and x2 must lie in [0,1].
func Cubic(x1, y1, x2, y2 float64) Curve {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(u float64) float64 { return ((ax*u+bx)*u + cx) * u }
	sampleY := func(u float64) float64 { return ((ay*u+by)*u + cy) * u }
	slopeX := func(u float64) float64 { return (3*ax*u+2*bx)*u + cx }

	const eps = 1e-7
	solve := func(x float64) float64 {
		u := x
		for i := 0; i < 8; i++ {
			dx := sampleX(u) - x
			if math.Abs(dx) < eps {
				return u
			}
			d := slopeX(u)
			if math.Abs(d) < 1e-6 {
				break
			}
			u -= dx / d
		}
		lo, hi := 0.0, 1.0
		u = x
		for lo < hi {
			v := sampleX(u)
			if math.Abs(v-x) < eps {
				return u
			}
			if x > v {
				lo = u
			} else {
				hi = u
			}
			if hi-lo < eps {
				break
			}
			u = (hi + lo) / 2
		}
		return u
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}

// Clamp01 restricts v to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
