package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"loan-amortizer/repository"
)

const defaultHistoryLimit = 20

type HistoryHandler struct {
	history repository.CalculationRepository
}

func NewHistoryHandler(history repository.CalculationRepository) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// RecentCalculations handles GET /amortization/history. It returns summary
// scalars only; schedules are never stored.
func (h *HistoryHandler) RecentCalculations(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.history.Recent(limit))
}
