package service

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"loan-amortizer/domain"
	"loan-amortizer/repository"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type AmortizationService struct {
	history repository.CalculationRepository
	cache   repository.CacheRepository
	log     *logrus.Logger
}

// NewAmortizationService creates a new AmortizationService with the given
// history repository and cache.
func NewAmortizationService(history repository.CalculationRepository,
	cache repository.CacheRepository,
	log *logrus.Logger,
) *AmortizationService {
	return &AmortizationService{history: history, cache: cache, log: log}
}

// GenerateSchedule validates the loan parameters and produces the full
// period-by-period amortization schedule with its summary scalars.
func (s *AmortizationService) GenerateSchedule(
	params domain.LoanParameters,
) (domain.AmortizationResult, error) {

	paymentsPerYear, err := validateParameters(params)
	if err != nil {
		return domain.AmortizationResult{}, err
	}

	cacheKey := scheduleCacheKey(params)
	if raw, ok := s.cache.Get(cacheKey); ok {
		var cached domain.AmortizationResult
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		s.log.Warnf("discarding undecodable cache entry for %s", cacheKey)
	}

	result := buildSchedule(params, paymentsPerYear)

	if !result.Converged {
		s.log.Warnf("schedule for principal %.2f did not converge within %d periods",
			params.Principal, result.PeriodsToPayoff)
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(cacheKey, string(raw)); err != nil {
			s.log.Warnf("failed to cache schedule: %v", err)
		}
	}

	// Record the summary (not critical if it fails).
	summary := domain.CalculationSummary{
		Parameters:          params,
		BasePeriodicPayment: result.BasePeriodicPayment,
		TotalInterestPaid:   result.TotalInterestPaid,
		PeriodsToPayoff:     result.PeriodsToPayoff,
	}
	if err := s.history.Save(summary); err != nil {
		s.log.Warnf("failed to save calculation summary: %v", err)
	}

	return result, nil
}

func validateParameters(params domain.LoanParameters) (int, error) {
	if params.Principal <= 0 {
		return 0, fmt.Errorf("%w: principal must be positive", domain.ErrInvalidParameter)
	}
	if params.Principal > MaxPrincipal {
		return 0, fmt.Errorf("%w: principal exceeds the maximum of %.2f", domain.ErrInvalidParameter, MaxPrincipal)
	}
	if params.AnnualRate < 0 {
		return 0, fmt.Errorf("%w: annual rate must not be negative", domain.ErrInvalidParameter)
	}
	if params.AnnualRate > MaxAnnualRate {
		return 0, fmt.Errorf("%w: annual rate exceeds the maximum of %.2f%%", domain.ErrInvalidParameter, MaxAnnualRate)
	}
	if params.TermYears <= 0 {
		return 0, fmt.Errorf("%w: term must be positive", domain.ErrInvalidParameter)
	}
	if params.TermYears > MaxTermYears {
		return 0, fmt.Errorf("%w: term exceeds the maximum of %d years", domain.ErrInvalidParameter, MaxTermYears)
	}
	paymentsPerYear, ok := params.PaymentFrequency.PaymentsPerYear()
	if !ok {
		return 0, fmt.Errorf("%w: unrecognized payment frequency %q", domain.ErrInvalidParameter, params.PaymentFrequency)
	}
	if params.ExtraPayment < 0 {
		return 0, fmt.Errorf("%w: extra payment must not be negative", domain.ErrInvalidParameter)
	}
	if params.ExtraPayment > MaxExtraPayment {
		return 0, fmt.Errorf("%w: extra payment exceeds the maximum of %.2f", domain.ErrInvalidParameter, MaxExtraPayment)
	}
	return paymentsPerYear, nil
}

// buildSchedule runs the fixed-payment amortization loop. It is pure: all
// state lives in locals and the returned result.
func buildSchedule(params domain.LoanParameters, paymentsPerYear int) domain.AmortizationResult {
	periodicRate := (params.AnnualRate / 100) / float64(paymentsPerYear)
	nominalPeriods := params.TermYears * paymentsPerYear

	var basePayment float64
	if periodicRate == 0 {
		// Zero interest: pure linear amortization.
		basePayment = params.Principal / float64(nominalPeriods)
	} else {
		compound := math.Pow(1+periodicRate, float64(nominalPeriods))
		basePayment = params.Principal * (periodicRate * compound) / (compound - 1)
	}

	totalPayment := basePayment + params.ExtraPayment

	maxIterations := FallbackMaxIterations
	if nominalPeriods > 0 {
		maxIterations = nominalPeriods * IterationSafetyFactor
	}

	schedule := make([]domain.PaymentRecord, 0, nominalPeriods)
	balance := params.Principal
	totalInterest := 0.0
	period := 0

	for balance > BalancePaidOffThreshold && period < maxIterations {
		period++
		interest := balance * periodicRate
		principal := totalPayment - interest

		// The final payment only covers what is left; the override is
		// local to this record and never carries into totalPayment.
		payment := totalPayment
		if balance < principal {
			principal = balance
			payment = principal + interest
			balance = 0
		} else {
			balance -= principal
		}

		totalInterest += interest

		schedule = append(schedule, domain.PaymentRecord{
			PeriodNumber:       period,
			PaymentAmount:      payment,
			PrincipalComponent: principal,
			InterestComponent:  interest,
			RemainingBalance:   balance,
		})
	}

	return domain.AmortizationResult{
		Schedule:            schedule,
		BasePeriodicPayment: basePayment,
		TotalInterestPaid:   totalInterest,
		PeriodsToPayoff:     period,
		Converged:           balance <= BalancePaidOffThreshold,
	}
}

func scheduleCacheKey(params domain.LoanParameters) string {
	return fmt.Sprintf("amortization:%.2f:%.4f:%d:%s:%.2f",
		params.Principal,
		params.AnnualRate,
		params.TermYears,
		params.PaymentFrequency,
		params.ExtraPayment,
	)
}
