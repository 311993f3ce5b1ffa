package http

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"loan-amortizer/domain"
	"loan-amortizer/service"
)

// scheduleRequest carries the five loan parameters over the wire. The
// frequency label is normalized before it reaches the service.
type scheduleRequest struct {
	Principal        float64 `json:"principal"`
	AnnualRate       float64 `json:"annual_rate"`
	TermYears        int     `json:"term_years"`
	PaymentFrequency string  `json:"payment_frequency"`
	ExtraPayment     float64 `json:"extra_payment"`
}

func (req scheduleRequest) toParameters() domain.LoanParameters {
	freq, ok := domain.ParseFrequency(req.PaymentFrequency)
	if !ok {
		// Pass the raw label through so validation reports it.
		freq = domain.Frequency(req.PaymentFrequency)
	}
	return domain.LoanParameters{
		Principal:        req.Principal,
		AnnualRate:       req.AnnualRate,
		TermYears:        req.TermYears,
		PaymentFrequency: freq,
		ExtraPayment:     req.ExtraPayment,
	}
}

type AmortizationHandler struct {
	service *service.AmortizationService
}

func NewAmortizationHandler(service *service.AmortizationService) *AmortizationHandler {
	return &AmortizationHandler{service: service}
}

// GenerateSchedule handles POST /amortization/schedule.
func (h *AmortizationHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.GenerateSchedule(req.toParameters())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ExportSchedule handles POST /amortization/schedule/export, streaming the
// schedule as CSV with one row per payment record.
func (h *AmortizationHandler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	params := req.toParameters()
	result, err := h.service.GenerateSchedule(params)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("loan_amortization_schedule_%.0f_%.2f%%.csv",
		params.Principal, params.AnnualRate)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	cw := csv.NewWriter(w)
	cw.Write([]string{"Payment No.", "Payment Amount", "Principal Paid", "Interest Paid", "Remaining Balance"})
	for _, rec := range result.Schedule {
		cw.Write([]string{
			strconv.Itoa(rec.PeriodNumber),
			strconv.FormatFloat(rec.PaymentAmount, 'f', 2, 64),
			strconv.FormatFloat(rec.PrincipalComponent, 'f', 2, 64),
			strconv.FormatFloat(rec.InterestComponent, 'f', 2, 64),
			strconv.FormatFloat(rec.RemainingBalance, 'f', 2, 64),
		})
	}
	cw.Flush()
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidParameter) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
