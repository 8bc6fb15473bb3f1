package api

import "time"

type ReportInputs struct {
	Budget              float64 `json:"budget"`
	MTDRevenue          float64 `json:"mtd_revenue"`
	WeeklyBudget        float64 `json:"weekly_budget"`
	CurrentWeekRevenue  float64 `json:"current_week_revenue"`
	PreviousWeekRevenue float64 `json:"previous_week_revenue"`
	ShortSupplies       float64 `json:"short_supplies"`
	Returns             float64 `json:"returns"`

	HistoricalTrend float64 `json:"historical_trend"`
	LinearExtrap    float64 `json:"linear_extrap"`
	BlendedEstimate float64 `json:"blended_estimate"`

	HighlightMay25        bool `json:"highlight_may_25"`
	ParmesanPriceIncrease bool `json:"parmesan_price_increase"`

	WeekNumber int        `json:"week_number"`
	ReportDate *time.Time `json:"report_date,omitempty"`
}

type DerivedMetrics struct {
	RevenueGap           float64 `json:"revenue_gap"`
	AchievementPct       float64 `json:"achievement_pct"`
	WeeklyVariance       float64 `json:"weekly_variance"`
	WeeklyVariancePct    float64 `json:"weekly_variance_pct"`
	GrowthRate           float64 `json:"growth_rate"`
	ClosingPct           float64 `json:"closing_pct"`
	ShortSupplyImpactPct float64 `json:"short_supply_impact_pct"`
	ReturnsImpactPct     float64 `json:"returns_impact_pct"`
}

type ScenarioRow struct {
	Label           string  `json:"label"`
	Amount          float64 `json:"amount"`
	PercentOfBudget float64 `json:"percent_of_budget"`
}

type Session struct {
	ID     string       `json:"id"`
	Inputs ReportInputs `json:"inputs"`
}

type AttachmentStatus struct {
	Category string `json:"category"`
	Loaded   bool   `json:"loaded"`
	Rows     int    `json:"rows,omitempty"`
	Message  string `json:"message,omitempty"`
}

// BudgetActualChart feeds the grouped bar chart: budget vs. actual for the
// weekly and monthly periods.
type BudgetActualChart struct {
	Periods []string  `json:"periods"`
	Budget  []float64 `json:"budget"`
	Actual  []float64 `json:"actual"`
}

// ScenarioChart feeds the scenario bar chart with its 100% reference line.
type ScenarioChart struct {
	Labels          []string  `json:"labels"`
	PercentOfBudget []float64 `json:"percent_of_budget"`
	ReferencePct    float64   `json:"reference_pct"`
}

type Charts struct {
	BudgetVsActual BudgetActualChart `json:"budget_vs_actual"`
	Scenarios      ScenarioChart     `json:"scenarios"`
}
