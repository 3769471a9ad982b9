package chart_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/pulse/internal/domain/chart"
	"github.com/okian/pulse/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarFigure(t *testing.T) {
	counts := []types.ActionCount{
		{Action: "start", Count: 1},
		{Action: "view", Count: 2},
		{Action: "click", Count: 1},
	}

	fig := chart.BarFigure("Customer activity", counts)

	require.Len(t, fig.Data, 1)
	assert.Equal(t, "bar", fig.Data[0].Type)
	assert.Equal(t, []string{"start", "view", "click"}, fig.Data[0].X)
	assert.Equal(t, []int{1, 2, 1}, fig.Data[0].Y)
	assert.Equal(t, "Customer activity", fig.Layout.Title.Text)
}

func TestBarFigureEmptyInput(t *testing.T) {
	fig := chart.BarFigure("empty", nil)

	require.Len(t, fig.Data, 1)
	assert.Empty(t, fig.Data[0].X)
	assert.Empty(t, fig.Data[0].Y)
	assert.Equal(t, "empty", fig.Layout.Title.Text)
}

func TestBarFigureJSONShape(t *testing.T) {
	fig := chart.BarFigure("t", []types.ActionCount{{Action: "view", Count: 5}})

	b, err := json.Marshal(fig)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"data":[{"type":"bar","x":["view"],"y":[5]}],"layout":{"title":{"text":"t"}}}`,
		string(b))
}
