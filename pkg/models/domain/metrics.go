package domain

// DerivedMetrics are recomputed from ReportInputs on every access and are
// never cached, so they cannot go stale.
type DerivedMetrics struct {
	RevenueGap           float64
	AchievementPct       float64
	WeeklyVariance       float64
	WeeklyVariancePct    float64
	GrowthRate           float64
	ClosingPct           float64
	ShortSupplyImpactPct float64
	ReturnsImpactPct     float64
}

// ScenarioRow is one labeled closing-revenue projection with its share of
// the monthly budget.
type ScenarioRow struct {
	Label           string
	Amount          float64
	PercentOfBudget float64
}

const (
	ScenarioHistoricalTrend = "Historical Trend"
	ScenarioLinearExtrap    = "Linear Extrapolation"
	ScenarioBlendedEstimate = "Blended Estimate"
)
