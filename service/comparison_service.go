package service

import "loan-amortizer/domain"

type ComparisonService struct {
	amortization *AmortizationService
}

func NewComparisonService(amortization *AmortizationService) *ComparisonService {
	return &ComparisonService{amortization: amortization}
}

// CompareExtraPayment runs the schedule twice, with the given extra payment
// and without one, and derives the savings between the two runs.
func (s *ComparisonService) CompareExtraPayment(
	params domain.LoanParameters,
) (domain.ComparisonResult, error) {

	withExtra, err := s.amortization.GenerateSchedule(params)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	baselineParams := params
	baselineParams.ExtraPayment = 0
	baseline, err := s.amortization.GenerateSchedule(baselineParams)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	return domain.ComparisonResult{
		WithExtra:       withExtra,
		WithoutExtra:    baseline,
		InterestSaved:   roundTo2Decimals(baseline.TotalInterestPaid - withExtra.TotalInterestPaid),
		PeriodsReduced:  baseline.PeriodsToPayoff - withExtra.PeriodsToPayoff,
		BaselinePeriods: baseline.PeriodsToPayoff,
	}, nil
}
