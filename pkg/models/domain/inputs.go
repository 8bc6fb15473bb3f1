package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNegativeAmount    = errors.New("monetary fields must be non-negative")
	ErrInvalidWeekNumber = errors.New("week number must be at least 1")
)

// ReportInputs is the full set of manually entered figures a report is
// generated from. It is held wholesale in session state and replaced on
// every save; derived values are never stored here.
type ReportInputs struct {
	Budget              float64
	MTDRevenue          float64
	WeeklyBudget        float64
	CurrentWeekRevenue  float64
	PreviousWeekRevenue float64
	ShortSupplies       float64
	Returns             float64

	HistoricalTrend float64
	LinearExtrap    float64
	BlendedEstimate float64

	HighlightMay25        bool
	ParmesanPriceIncrease bool

	WeekNumber int
	ReportDate time.Time
}

// DefaultInputs returns the form defaults a fresh session starts from.
func DefaultInputs() ReportInputs {
	return ReportInputs{
		Budget:                113998325,
		MTDRevenue:            93415418,
		WeeklyBudget:          26479125,
		CurrentWeekRevenue:    20943811,
		PreviousWeekRevenue:   20353938,
		ShortSupplies:         1266460,
		Returns:               193615,
		HistoricalTrend:       89936015,
		LinearExtrap:          99857861,
		BlendedEstimate:       93904753,
		HighlightMay25:        true,
		ParmesanPriceIncrease: true,
		WeekNumber:            22,
	}
}

// Validate checks the invariants required before a document may be
// generated. Zero denominators are not an error here; every ratio has a
// defined zero fallback.
func (in ReportInputs) Validate() error {
	monetary := map[string]float64{
		"budget":                in.Budget,
		"mtd_revenue":           in.MTDRevenue,
		"weekly_budget":         in.WeeklyBudget,
		"current_week_revenue":  in.CurrentWeekRevenue,
		"previous_week_revenue": in.PreviousWeekRevenue,
		"short_supplies":        in.ShortSupplies,
		"returns":               in.Returns,
		"historical_trend":      in.HistoricalTrend,
		"linear_extrap":         in.LinearExtrap,
		"blended_estimate":      in.BlendedEstimate,
	}
	for name, v := range monetary {
		if v < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeAmount, name)
		}
	}
	if in.WeekNumber < 1 {
		return ErrInvalidWeekNumber
	}
	return nil
}
