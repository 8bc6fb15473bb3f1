package adapters

import (
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/api"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/domain"
)

func MapReportInputsApiToDomain(in api.ReportInputs) domain.ReportInputs {
	out := domain.ReportInputs{
		Budget:                in.Budget,
		MTDRevenue:            in.MTDRevenue,
		WeeklyBudget:          in.WeeklyBudget,
		CurrentWeekRevenue:    in.CurrentWeekRevenue,
		PreviousWeekRevenue:   in.PreviousWeekRevenue,
		ShortSupplies:         in.ShortSupplies,
		Returns:               in.Returns,
		HistoricalTrend:       in.HistoricalTrend,
		LinearExtrap:          in.LinearExtrap,
		BlendedEstimate:       in.BlendedEstimate,
		HighlightMay25:        in.HighlightMay25,
		ParmesanPriceIncrease: in.ParmesanPriceIncrease,
		WeekNumber:            in.WeekNumber,
	}
	if in.ReportDate != nil {
		out.ReportDate = *in.ReportDate
	}
	return out
}

func MapReportInputsDomainToApi(in domain.ReportInputs) api.ReportInputs {
	out := api.ReportInputs{
		Budget:                in.Budget,
		MTDRevenue:            in.MTDRevenue,
		WeeklyBudget:          in.WeeklyBudget,
		CurrentWeekRevenue:    in.CurrentWeekRevenue,
		PreviousWeekRevenue:   in.PreviousWeekRevenue,
		ShortSupplies:         in.ShortSupplies,
		Returns:               in.Returns,
		HistoricalTrend:       in.HistoricalTrend,
		LinearExtrap:          in.LinearExtrap,
		BlendedEstimate:       in.BlendedEstimate,
		HighlightMay25:        in.HighlightMay25,
		ParmesanPriceIncrease: in.ParmesanPriceIncrease,
		WeekNumber:            in.WeekNumber,
	}
	if !in.ReportDate.IsZero() {
		d := in.ReportDate
		out.ReportDate = &d
	}
	return out
}

func MapDerivedMetricsDomainToApi(m domain.DerivedMetrics) api.DerivedMetrics {
	return api.DerivedMetrics{
		RevenueGap:           m.RevenueGap,
		AchievementPct:       m.AchievementPct,
		WeeklyVariance:       m.WeeklyVariance,
		WeeklyVariancePct:    m.WeeklyVariancePct,
		GrowthRate:           m.GrowthRate,
		ClosingPct:           m.ClosingPct,
		ShortSupplyImpactPct: m.ShortSupplyImpactPct,
		ReturnsImpactPct:     m.ReturnsImpactPct,
	}
}

func MapScenarioRowsDomainToApi(rows []domain.ScenarioRow) []api.ScenarioRow {
	out := make([]api.ScenarioRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.ScenarioRow{
			Label:           r.Label,
			Amount:          r.Amount,
			PercentOfBudget: r.PercentOfBudget,
		})
	}
	return out
}

// MapChartsDomainToApi shapes inputs and scenario rows into the series the
// charting layer consumes directly.
func MapChartsDomainToApi(in domain.ReportInputs, rows []domain.ScenarioRow) api.Charts {
	charts := api.Charts{
		BudgetVsActual: api.BudgetActualChart{
			Periods: []string{"Weekly", "MTD"},
			Budget:  []float64{in.WeeklyBudget, in.Budget},
			Actual:  []float64{in.CurrentWeekRevenue, in.MTDRevenue},
		},
		Scenarios: api.ScenarioChart{ReferencePct: 100},
	}
	for _, r := range rows {
		charts.Scenarios.Labels = append(charts.Scenarios.Labels, r.Label)
		charts.Scenarios.PercentOfBudget = append(charts.Scenarios.PercentOfBudget, r.PercentOfBudget)
	}
	return charts
}

func MapLoadResultToAttachmentStatus(category domain.AttachmentCategory, r domain.TableLoadResult) api.AttachmentStatus {
	status := api.AttachmentStatus{Category: string(category), Loaded: r.OK()}
	if r.OK() {
		status.Rows = len(r.Table.Rows)
	} else {
		status.Message = r.Message
	}
	return status
}
