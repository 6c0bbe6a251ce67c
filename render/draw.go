package render

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/morph"
	"github.com/lixenwraith/morph/deck"
	"github.com/lixenwraith/morph/engine/status"
	"github.com/lixenwraith/morph/geometry"
)

// Shapes below this opacity are not drawn at all
const opacityFloor = 0.05

// shapeStyle maps opacity to a grey-to-white foreground ramp
func shapeStyle(opacity float64) tcell.Style {
	if opacity > 1 {
		opacity = 1
	}
	if opacity < 0 {
		opacity = 0
	}
	level := int32(64 + opacity*191)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(level, level, level))
}

func drawShape(screen tcell.Screen, tgt *morph.Target, label string) {
	opacity := tgt.GetOr(morph.PropOpacity, 1)
	if opacity < opacityFloor {
		return
	}

	s := geometry.ShapeOf(tgt)
	x := int(math.Round(s.X))
	y := int(math.Round(s.Y))
	w := int(math.Round(s.Width))
	h := int(math.Round(s.Height))
	if w < 2 || h < 2 {
		return
	}

	style := shapeStyle(opacity)
	drawBox(screen, x, y, w, h, style)

	if label == "" {
		label = tgt.Name()
	}
	if len(label) > w-2 {
		label = label[:w-2]
	}
	lx := x + (w-len(label))/2
	ly := y + h/2
	for i, r := range label {
		screen.SetContent(lx+i, ly, r, nil, style)
	}
}

func drawBox(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for i := 1; i < w-1; i++ {
		screen.SetContent(x+i, y, tcell.RuneHLine, nil, style)
		screen.SetContent(x+i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for j := 1; j < h-1; j++ {
		screen.SetContent(x, y+j, tcell.RuneVLine, nil, style)
		screen.SetContent(x+w-1, y+j, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

// drawConnector routes with live shape values and dims with the fainter
// endpoint, so a connector fades with the shape it attaches to
func drawConnector(screen tcell.Screen, c deck.Connector) {
	fromOp := c.From.GetOr(morph.PropOpacity, 1)
	toOp := c.To.GetOr(morph.PropOpacity, 1)
	opacity := math.Min(fromOp, toOp)
	if opacity < opacityFloor {
		return
	}
	style := shapeStyle(opacity)

	pts := geometry.ConnectionPoints(
		geometry.ShapeOf(c.From), geometry.ShapeOf(c.To),
		c.FromAnchor, c.ToAnchor, c.Kind)

	if c.Kind == geometry.ConnectionCurved && len(pts) == 8 {
		drawBezier(screen, pts, style)
		return
	}
	for i := 2; i+1 < len(pts); i += 2 {
		drawLine(screen, pts[i-2], pts[i-1], pts[i], pts[i+1], style)
	}
}

// drawLine plots a segment cell by cell; axis-aligned runs use box-drawing
// runes, anything else a midpoint dot
func drawLine(screen tcell.Screen, x1, y1, x2, y2 float64, style tcell.Style) {
	dx := x2 - x1
	dy := y2 - y1
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		return
	}

	r := '·'
	if dy == 0 {
		r = tcell.RuneHLine
	} else if dx == 0 {
		r = tcell.RuneVLine
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Round(x1 + dx*t))
		py := int(math.Round(y1 + dy*t))
		screen.SetContent(px, py, r, nil, style)
	}
}

// drawBezier samples the cubic at cell resolution
func drawBezier(screen tcell.Screen, p []float64, style tcell.Style) {
	span := math.Abs(p[6]-p[0]) + math.Abs(p[7]-p[1])
	samples := int(span) * 2
	if samples < 8 {
		samples = 8
	}
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		u := 1 - t
		x := u*u*u*p[0] + 3*u*u*t*p[2] + 3*u*t*t*p[4] + t*t*t*p[6]
		y := u*u*u*p[1] + 3*u*u*t*p[3] + 3*u*t*t*p[5] + t*t*t*p[7]
		screen.SetContent(int(math.Round(x)), int(math.Round(y)), '·', nil, style)
	}
}

func drawOverlay(screen tcell.Screen, ov Overlay) {
	w, h := screen.Size()
	y := h - 1
	style := tcell.StyleDefault.Foreground(tcell.ColorTeal)

	state := "settled"
	if ov.Animating {
		state = "animating"
	}
	line := fmt.Sprintf(" %s | page %d/%d | step %d/%d | %s ",
		ov.Title, ov.Page+1, ov.PageCount, ov.Step+1, ov.Steps, state)
	for i, r := range line {
		if i >= w {
			break
		}
		screen.SetContent(i, y, r, nil, style)
	}

	if ov.Debug && ov.Metrics != nil {
		drawMetrics(screen, ov.Metrics, w)
	}
}

func drawMetrics(screen tcell.Screen, reg *status.Registry, w int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	row := 0
	put := func(line string) {
		x := w - len(line) - 1
		if x < 0 {
			x = 0
		}
		for i, r := range line {
			screen.SetContent(x+i, row, r, nil, style)
		}
		row++
	}
	reg.Ints.Range(func(key string, ptr *atomic.Int64) {
		put(fmt.Sprintf("%s=%d", key, ptr.Load()))
	})
	reg.Floats.Range(func(key string, ptr *status.AtomicFloat) {
		put(fmt.Sprintf("%s=%.2f", key, ptr.Get()))
	})
}
