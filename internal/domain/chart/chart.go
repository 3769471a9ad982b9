// Package chart builds chart figures for the dashboard from aggregate data.
//
// The figure shape follows the Plotly JSON contract: a list of traces plus a
// layout. The dashboard page hands the marshaled figure straight to
// Plotly.newPlot.
package chart

import "github.com/okian/pulse/internal/domain/types"

// Trace is one data series in a figure.
type Trace struct {
	Type string   `json:"type"`
	X    []string `json:"x"`
	Y    []int    `json:"y"`
}

// Title holds the layout title text.
type Title struct {
	Text string `json:"text"`
}

// Layout describes figure-level presentation.
type Layout struct {
	Title Title `json:"title"`
}

// Figure is a complete chart description.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// BarFigure converts action counts into a bar chart figure. The input order
// is preserved; an empty input yields a figure with one empty trace.
func BarFigure(title string, counts []types.ActionCount) Figure {
	x := make([]string, len(counts))
	y := make([]int, len(counts))
	for i, c := range counts {
		x[i] = c.Action
		y[i] = c.Count
	}
	return Figure{
		Data:   []Trace{{Type: "bar", X: x, Y: y}},
		Layout: Layout{Title: Title{Text: title}},
	}
}
