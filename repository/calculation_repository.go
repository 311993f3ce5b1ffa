package repository

import (
	"sync"

	"loan-amortizer/domain"
)

// CalculationRepository keeps a history of computation summaries. Schedules
// themselves are never stored.
type CalculationRepository interface {
	Save(summary domain.CalculationSummary) error
	Recent(limit int) []domain.CalculationSummary
}

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.CalculationSummary
}

// NewCalculationRepositoryMemory creates a new in-memory history.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []domain.CalculationSummary{},
	}
}

// Save appends the summary to the history.
func (r *CalculationRepositoryMemory) Save(summary domain.CalculationSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, summary)
	return nil
}

// Recent returns up to limit summaries, newest first.
func (r *CalculationRepositoryMemory) Recent(limit int) []domain.CalculationSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.CalculationSummary, 0, limit)
	for i := len(r.data) - 1; i >= len(r.data)-limit; i-- {
		out = append(out, r.data[i])
	}
	return out
}
