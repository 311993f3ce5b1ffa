package service

import (
	"errors"
	"testing"

	"loan-amortizer/domain"
)

func newTestComparisonService() *ComparisonService {
	svc, _ := newTestService()
	return NewComparisonService(svc)
}

func TestCompareExtraPayment_SavingsWithExtra(t *testing.T) {

	svc := newTestComparisonService()

	result, err := svc.CompareExtraPayment(domain.LoanParameters{
		Principal:        200000,
		AnnualRate:       4.5,
		TermYears:        30,
		PaymentFrequency: domain.Monthly,
		ExtraPayment:     200,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.BaselinePeriods != 360 {
		t.Errorf("expected 360 baseline periods, got %d", result.BaselinePeriods)
	}
	if result.PeriodsReduced <= 0 {
		t.Errorf("expected a shorter payoff with extra payment, got reduction %d", result.PeriodsReduced)
	}
	if result.InterestSaved <= 0 {
		t.Errorf("expected interest savings, got %.2f", result.InterestSaved)
	}
	if result.WithoutExtra.PeriodsToPayoff-result.WithExtra.PeriodsToPayoff != result.PeriodsReduced {
		t.Errorf("periods reduced does not match the two runs")
	}
}

func TestCompareExtraPayment_NoExtraIsNeutral(t *testing.T) {

	svc := newTestComparisonService()

	result, err := svc.CompareExtraPayment(domain.LoanParameters{
		Principal:        50000,
		AnnualRate:       6,
		TermYears:        10,
		PaymentFrequency: domain.Monthly,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.InterestSaved != 0 {
		t.Errorf("expected zero interest saved, got %.2f", result.InterestSaved)
	}
	if result.PeriodsReduced != 0 {
		t.Errorf("expected zero periods reduced, got %d", result.PeriodsReduced)
	}
}

func TestCompareExtraPayment_InvalidInput(t *testing.T) {

	svc := newTestComparisonService()

	_, err := svc.CompareExtraPayment(domain.LoanParameters{
		Principal:        -1,
		AnnualRate:       6,
		TermYears:        10,
		PaymentFrequency: domain.Monthly,
	})

	if !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}
