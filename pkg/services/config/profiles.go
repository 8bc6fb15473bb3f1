package config

import (
	"context"
	"fmt"
	"time"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry exposes named saved input sets from a profiles file, so the CLI
// can keep several report configurations side by side.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetInputs(ctx context.Context, profile string) (domain.ReportInputs, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

// GetInputs reads one profile section. Missing keys fall back to the form
// defaults rather than zero values.
func (r *iniRegistry) GetInputs(_ context.Context, profile string) (domain.ReportInputs, error) {
	section, err := r.cfg.GetSection(profile)
	if err != nil {
		return domain.ReportInputs{}, fmt.Errorf("profile %q not found", profile)
	}

	def := domain.DefaultInputs()
	in := domain.ReportInputs{
		Budget:                section.Key("budget").MustFloat64(def.Budget),
		MTDRevenue:            section.Key("mtd_revenue").MustFloat64(def.MTDRevenue),
		WeeklyBudget:          section.Key("weekly_budget").MustFloat64(def.WeeklyBudget),
		CurrentWeekRevenue:    section.Key("current_week_revenue").MustFloat64(def.CurrentWeekRevenue),
		PreviousWeekRevenue:   section.Key("previous_week_revenue").MustFloat64(def.PreviousWeekRevenue),
		ShortSupplies:         section.Key("short_supplies").MustFloat64(def.ShortSupplies),
		Returns:               section.Key("returns").MustFloat64(def.Returns),
		HistoricalTrend:       section.Key("historical_trend").MustFloat64(def.HistoricalTrend),
		LinearExtrap:          section.Key("linear_extrap").MustFloat64(def.LinearExtrap),
		BlendedEstimate:       section.Key("blended_estimate").MustFloat64(def.BlendedEstimate),
		HighlightMay25:        section.Key("highlight_may_25").MustBool(def.HighlightMay25),
		ParmesanPriceIncrease: section.Key("parmesan_price_increase").MustBool(def.ParmesanPriceIncrease),
		WeekNumber:            section.Key("week_number").MustInt(def.WeekNumber),
	}

	if raw := section.Key("report_date").String(); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return domain.ReportInputs{}, fmt.Errorf("profile %q: invalid report_date %q: %w", profile, raw, err)
		}
		in.ReportDate = d
	}
	return in, nil
}
