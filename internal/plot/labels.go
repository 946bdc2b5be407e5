package plot

import "math"

// Point is a position in normalized plot space, where the visible plot
// area spans [0, 1] on both axes.
type Point struct {
	X float64
	Y float64
}

// LabelPlacer chooses label anchor positions so that point labels do not
// overlap each other. It returns one position per text.
type LabelPlacer interface {
	Place(points []Point, texts []string) []Point
}

// IdentityPlacer anchors every label on its own point
type IdentityPlacer struct{}

// Place returns a copy of points
func (IdentityPlacer) Place(points []Point, _ []string) []Point {
	return append([]Point(nil), points...)
}

// RepelPlacer pushes overlapping label boxes apart, and away from data
// points, for a bounded number of iterations.
type RepelPlacer struct {
	Iterations int
	CharWidth  float64 // Width of one character in normalized units
	LineHeight float64 // Height of one label in normalized units
	Offset     float64 // Initial vertical offset above the point
}

// NewRepelPlacer returns a placer sized for 10pt labels on a 1024x768 chart
func NewRepelPlacer() *RepelPlacer {
	return &RepelPlacer{
		Iterations: 100,
		CharWidth:  0.008,
		LineHeight: 0.025,
		Offset:     0.02,
	}
}

type box struct {
	cx, cy float64
	hw, hh float64
}

// overlap returns the overlap depth of two boxes along each axis
func (a box) overlap(b box) (float64, float64) {
	ox := a.hw + b.hw - math.Abs(a.cx-b.cx)
	oy := a.hh + b.hh - math.Abs(a.cy-b.cy)
	return ox, oy
}

// Place moves label anchors until no two label boxes overlap or the
// iteration budget is spent. The result is deterministic for equal input.
func (p *RepelPlacer) Place(points []Point, texts []string) []Point {
	boxes := make([]box, len(points))
	for i, pt := range points {
		n := 1
		if i < len(texts) && len(texts[i]) > 0 {
			n = len(texts[i])
		}
		boxes[i] = box{
			cx: pt.X,
			cy: pt.Y + p.Offset,
			hw: float64(n) * p.CharWidth / 2,
			hh: p.LineHeight / 2,
		}
	}

	for iter := 0; iter < p.Iterations; iter++ {
		moved := false

		for i := range boxes {
			for j := i + 1; j < len(boxes); j++ {
				ox, oy := boxes[i].overlap(boxes[j])
				if ox <= 0 || oy <= 0 {
					continue
				}
				moved = true

				// Separate along the axis needing the smaller move
				if ox < oy {
					d := ox / 2
					if boxes[i].cx < boxes[j].cx || (boxes[i].cx == boxes[j].cx && i < j) {
						d = -d
					}
					boxes[i].cx += d
					boxes[j].cx -= d
				} else {
					d := oy / 2
					if boxes[i].cy < boxes[j].cy || (boxes[i].cy == boxes[j].cy && i < j) {
						d = -d
					}
					boxes[i].cy += d
					boxes[j].cy -= d
				}
			}

			// Keep labels off other data points
			for k, pt := range points {
				if k == i {
					continue
				}
				ox := boxes[i].hw - math.Abs(boxes[i].cx-pt.X)
				oy := boxes[i].hh - math.Abs(boxes[i].cy-pt.Y)
				if ox > 0 && oy > 0 {
					moved = true
					if boxes[i].cy >= pt.Y {
						boxes[i].cy += oy
					} else {
						boxes[i].cy -= oy
					}
				}
			}
		}

		if !moved {
			break
		}
	}

	out := make([]Point, len(boxes))
	for i, b := range boxes {
		out[i] = Point{X: clamp(b.cx), Y: clamp(b.cy)}
	}
	return out
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
