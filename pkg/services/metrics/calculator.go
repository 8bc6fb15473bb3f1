package metrics

import "github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/domain"

// Compute derives all report percentages and deltas from the raw inputs.
// Pure and deterministic; every ratio with a zero denominator falls back
// to 0 instead of producing Inf or NaN.
func Compute(in domain.ReportInputs) domain.DerivedMetrics {
	return domain.DerivedMetrics{
		RevenueGap:           in.Budget - in.MTDRevenue,
		AchievementPct:       ratioPct(in.MTDRevenue, in.Budget),
		WeeklyVariance:       in.CurrentWeekRevenue - in.WeeklyBudget,
		WeeklyVariancePct:    ratioPct(in.CurrentWeekRevenue-in.WeeklyBudget, in.WeeklyBudget),
		GrowthRate:           ratioPct(in.CurrentWeekRevenue-in.PreviousWeekRevenue, in.PreviousWeekRevenue),
		ClosingPct:           ratioPct(in.BlendedEstimate, in.Budget),
		ShortSupplyImpactPct: ratioPct(in.ShortSupplies, in.CurrentWeekRevenue),
		ReturnsImpactPct:     ratioPct(in.Returns, in.CurrentWeekRevenue),
	}
}

func ratioPct(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator * 100
}
