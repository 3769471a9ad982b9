// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/pulse/internal/domain/types"
	"github.com/okian/pulse/pkg/logger"
)

// RecordsDependencies defines the interface for record listing.
type RecordsDependencies interface {
	ListRecords(ctx context.Context) ([]types.Record, error)
}

// RecordsHandler handles record listing requests.
type RecordsHandler struct {
	deps RecordsDependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps RecordsDependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// HandleGetData handles GET /get_data requests and returns the full ordered
// record sequence as a JSON array.
func (h *RecordsHandler) HandleGetData(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_data"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	records, err := h.deps.ListRecords(r.Context())
	if err != nil {
		logger.Get().Error(r.Context(), "record listing failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, WrapKind(op, ErrQueryFailed, err))
		return
	}
	writeJSON(w, http.StatusOK, records)
}
