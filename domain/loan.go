package domain

import (
	"errors"
	"strings"
)

// ErrInvalidParameter is wrapped by every input validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

// Frequency is how often a payment is made. Values follow the labels the
// calculator UI exposes.
type Frequency string

const (
	Monthly   Frequency = "monthly"
	BiWeekly  Frequency = "bi-weekly"
	Quarterly Frequency = "quarterly"
	Annually  Frequency = "annually"
)

// ParseFrequency normalizes a user-supplied frequency label. The boolean is
// false for labels outside the closed set.
func ParseFrequency(s string) (Frequency, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return Monthly, true
	case "bi-weekly", "biweekly":
		return BiWeekly, true
	case "quarterly":
		return Quarterly, true
	case "annually":
		return Annually, true
	}
	return "", false
}

// PaymentsPerYear returns the number of payment periods per year, or false
// for an unrecognized frequency.
func (f Frequency) PaymentsPerYear() (int, bool) {
	switch f {
	case Monthly:
		return 12, true
	case BiWeekly:
		return 26, true
	case Quarterly:
		return 4, true
	case Annually:
		return 1, true
	}
	return 0, false
}

type LoanParameters struct {
	Principal        float64   `json:"principal"`
	AnnualRate       float64   `json:"annual_rate"`
	TermYears        int       `json:"term_years"`
	PaymentFrequency Frequency `json:"payment_frequency"`
	ExtraPayment     float64   `json:"extra_payment"`
}

// PaymentRecord is one row of the amortization schedule.
type PaymentRecord struct {
	PeriodNumber       int     `json:"period_number"`
	PaymentAmount      float64 `json:"payment_amount"`
	PrincipalComponent float64 `json:"principal_component"`
	InterestComponent  float64 `json:"interest_component"`
	RemainingBalance   float64 `json:"remaining_balance"`
}

// AmortizationResult is the full schedule plus its summary scalars.
// Converged is false when the iteration ceiling was reached before the
// balance cleared; the schedule is then truncated and not authoritative.
type AmortizationResult struct {
	Schedule            []PaymentRecord `json:"schedule"`
	BasePeriodicPayment float64         `json:"base_periodic_payment"`
	TotalInterestPaid   float64         `json:"total_interest_paid"`
	PeriodsToPayoff     int             `json:"periods_to_payoff"`
	Converged           bool            `json:"converged"`
}

// CalculationSummary is what the history keeps: the inputs and the summary
// scalars, never the schedule itself.
type CalculationSummary struct {
	Parameters          LoanParameters `json:"parameters"`
	BasePeriodicPayment float64        `json:"base_periodic_payment"`
	TotalInterestPaid   float64        `json:"total_interest_paid"`
	PeriodsToPayoff     int            `json:"periods_to_payoff"`
}

// ComparisonResult contrasts a loan carrying an extra payment against the
// same loan without one.
type ComparisonResult struct {
	WithExtra       AmortizationResult `json:"with_extra"`
	WithoutExtra    AmortizationResult `json:"without_extra"`
	InterestSaved   float64            `json:"interest_saved"`
	PeriodsReduced  int                `json:"periods_reduced"`
	BaselinePeriods int                `json:"baseline_periods"`
}
