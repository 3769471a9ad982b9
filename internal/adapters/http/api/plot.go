// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/pulse/internal/domain/chart"
	"github.com/okian/pulse/pkg/logger"
)

// PlotDependencies defines the interface for chart rendering.
type PlotDependencies interface {
	Chart(ctx context.Context) (chart.Figure, error)
}

// PlotHandler handles chart figure requests.
type PlotHandler struct {
	deps PlotDependencies
}

// NewPlotHandler creates a new plot handler.
func NewPlotHandler(deps PlotDependencies) *PlotHandler {
	return &PlotHandler{deps: deps}
}

// HandlePlot handles GET /plot requests and returns a bar chart figure the
// dashboard page hands straight to the charting library.
func (h *PlotHandler) HandlePlot(w http.ResponseWriter, r *http.Request) {
	const op = "api.plot"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	fig, err := h.deps.Chart(r.Context())
	if err != nil {
		logger.Get().Error(r.Context(), "chart rendering failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, WrapKind(op, ErrQueryFailed, err))
		return
	}
	writeJSON(w, http.StatusOK, fig)
}
