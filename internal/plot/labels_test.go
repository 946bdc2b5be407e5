package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelBoxes(p *RepelPlacer, placed []Point, texts []string) []box {
	boxes := make([]box, len(placed))
	for i, pt := range placed {
		boxes[i] = box{cx: pt.X, cy: pt.Y, hw: float64(len(texts[i])) * p.CharWidth / 2, hh: p.LineHeight / 2}
	}
	return boxes
}

func TestRepelPlacer_SeparatesCoincidentLabels(t *testing.T) {
	p := NewRepelPlacer()
	points := []Point{{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5}}
	texts := []string{"max", "fast", "default"}

	placed := p.Place(points, texts)
	require.Len(t, placed, 3)

	boxes := labelBoxes(p, placed, texts)
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			ox, oy := boxes[i].overlap(boxes[j])
			assert.True(t, ox <= 1e-9 || oy <= 1e-9, "labels %d and %d overlap", i, j)
		}
	}
}

func TestRepelPlacer_LeavesDistantLabels(t *testing.T) {
	p := NewRepelPlacer()
	points := []Point{{0.1, 0.1}, {0.9, 0.9}}

	placed := p.Place(points, []string{"1", "2"})
	assert.InDelta(t, 0.1, placed[0].X, 1e-12)
	assert.InDelta(t, 0.1+p.Offset, placed[0].Y, 1e-12)
	assert.InDelta(t, 0.9, placed[1].X, 1e-12)
}

func TestRepelPlacer_Deterministic(t *testing.T) {
	points := []Point{{0.3, 0.3}, {0.31, 0.3}, {0.3, 0.31}, {0.7, 0.2}}
	texts := []string{"a", "bb", "ccc", "dddd"}

	first := NewRepelPlacer().Place(points, texts)
	second := NewRepelPlacer().Place(points, texts)
	assert.Equal(t, first, second)
}

func TestRepelPlacer_ClampsToPlotArea(t *testing.T) {
	placed := NewRepelPlacer().Place([]Point{{1, 1}, {1, 1}}, []string{"x", "y"})
	for _, p := range placed {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 1.0)
	}
}

func TestRepelPlacer_Empty(t *testing.T) {
	assert.Empty(t, NewRepelPlacer().Place(nil, nil))
}

func TestIdentityPlacer(t *testing.T) {
	points := []Point{{0.2, 0.4}}
	placed := IdentityPlacer{}.Place(points, []string{"max"})
	assert.Equal(t, points, placed)

	placed[0].X = 0.9
	assert.Equal(t, 0.2, points[0].X)
}
