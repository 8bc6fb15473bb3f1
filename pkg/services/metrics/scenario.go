package metrics

import "github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/domain"

// BuildScenarios returns the three closing-estimate rows in their fixed
// order regardless of input magnitudes.
func BuildScenarios(in domain.ReportInputs) []domain.ScenarioRow {
	return []domain.ScenarioRow{
		{
			Label:           domain.ScenarioHistoricalTrend,
			Amount:          in.HistoricalTrend,
			PercentOfBudget: ratioPct(in.HistoricalTrend, in.Budget),
		},
		{
			Label:           domain.ScenarioLinearExtrap,
			Amount:          in.LinearExtrap,
			PercentOfBudget: ratioPct(in.LinearExtrap, in.Budget),
		},
		{
			Label:           domain.ScenarioBlendedEstimate,
			Amount:          in.BlendedEstimate,
			PercentOfBudget: ratioPct(in.BlendedEstimate, in.Budget),
		},
	}
}
