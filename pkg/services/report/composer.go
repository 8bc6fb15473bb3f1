package report

import (
	"fmt"
	"time"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/domain"
)

const (
	TitleShortSupply   = "Top 10 Short Supplied Items"
	TitleMarketReturns = "Top 10 Market Returns"

	DefaultCurrency = "KSH"
)

// Composer assembles the weekly sales document. Section order, headings and
// number formats are fixed: downstream consumers rely on them staying
// stable across regenerations.
type Composer struct {
	currency string
	nowFn    func() time.Time
}

func NewComposer(currency string) *Composer {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Composer{currency: currency, nowFn: time.Now}
}

// Compose builds the full block sequence from the inputs, their derived
// metrics and scenario rows, and the optional attachment load results
// (nil means the attachment was never supplied).
func (c *Composer) Compose(
	in domain.ReportInputs,
	m domain.DerivedMetrics,
	scenarios []domain.ScenarioRow,
	shortSupply *domain.TableLoadResult,
	marketReturns *domain.TableLoadResult,
) domain.GeneratedReport {
	now := c.nowFn()
	title := fmt.Sprintf("Week %d Sales Report", in.WeekNumber)

	blocks := []domain.Block{
		domain.CenteredHeading(0, title),
		domain.CenteredParagraph("Generated on: " + now.Format("2006-01-02 15:04")),

		domain.Heading(1, "MTD Sales Revenue Update"),
		domain.Paragraph("Budget: " + c.money(in.Budget)),
		domain.Paragraph("MTD Revenue: " + c.money(in.MTDRevenue)),
		domain.Paragraph(fmt.Sprintf("Achievement vs Budget: %.0f%%", m.AchievementPct)),
		domain.Paragraph(fmt.Sprintf("Revenue Gap to Budget: %s (%.0f%%)", c.money(m.RevenueGap), 100-m.AchievementPct)),
		domain.Paragraph(fmt.Sprintf("Closing Revenue Estimate: %s (%.0f%% of Budget)", c.money(in.BlendedEstimate), m.ClosingPct)),

		domain.Heading(1, "Current Week Performance"),
		domain.Paragraph("Weekly Budget: " + c.money(in.WeeklyBudget)),
		domain.Paragraph("Current Week Revenue: " + c.money(in.CurrentWeekRevenue)),
		domain.Paragraph(fmt.Sprintf("Variance to Budget: %s (%+.0f%%)", c.money(m.WeeklyVariance), m.WeeklyVariancePct)),
		domain.Paragraph("Previous Week Revenue: " + c.money(in.PreviousWeekRevenue)),
		domain.Paragraph(fmt.Sprintf("Growth Rate: %+.2f%%", m.GrowthRate)),

		domain.Heading(1, "Operational Insights"),
		domain.Paragraph(fmt.Sprintf("Short Supplies: %s (~%.1f%% impact)", c.money(in.ShortSupplies), m.ShortSupplyImpactPct)),
		domain.Paragraph(fmt.Sprintf("Returns: %s (~%.1f%% impact)", c.money(in.Returns), m.ReturnsImpactPct)),

		domain.Heading(1, "Key Highlights"),
		domain.Paragraph(fmt.Sprintf("Week %d showed a %+.2f%% growth over Week %d, %s.",
			in.WeekNumber, m.GrowthRate, in.WeekNumber-1, budgetClause(m.WeeklyVariance))),
		domain.Paragraph(fmt.Sprintf("MTD Revenue is now at %.0f%% of budget with %s to go.",
			m.AchievementPct, c.money(m.RevenueGap))),
	}

	if in.HighlightMay25 {
		blocks = append(blocks, domain.Bullet(1, "May 25 sales exceeded the historical trend."))
		if in.ParmesanPriceIncrease {
			blocks = append(blocks, domain.Bullet(2, "This was likely due to an increase in Parmesan price."))
		}
	}

	blocks = append(blocks, domain.Heading(1, "Closing Estimates Summary"))
	blocks = append(blocks, domain.TableBlock(c.scenarioTable(scenarios)))

	blocks = appendAttachment(blocks, TitleShortSupply, shortSupply)
	blocks = appendAttachment(blocks, TitleMarketReturns, marketReturns)

	return domain.GeneratedReport{
		Title:       title,
		GeneratedAt: now,
		Blocks:      blocks,
	}
}

// Filename returns the artifact name for a generated document.
func Filename(week int, at time.Time) string {
	return fmt.Sprintf("Week%d_Sales_Report_%s.md", week, at.Format("20060102_1504"))
}

func (c *Composer) scenarioTable(rows []domain.ScenarioRow) domain.Table {
	t := domain.Table{Header: []string{"Scenario", "Estimate", "% of Budget"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Label,
			groupedAmount(r.Amount),
			fmt.Sprintf("%.1f%%", r.PercentOfBudget),
		})
	}
	return t
}

func appendAttachment(blocks []domain.Block, title string, result *domain.TableLoadResult) []domain.Block {
	if result == nil {
		return blocks
	}
	blocks = append(blocks, domain.Heading(1, title))
	if !result.OK() {
		return append(blocks, domain.Paragraph(result.Message))
	}
	return append(blocks, domain.TableBlock(domain.Table{
		Header: result.Table.Columns,
		Rows:   result.Table.Rows,
	}))
}

// budgetClause keeps the original narrative when the week ran under budget
// and flips it when it did not, so a regenerated document never asserts
// the wrong direction.
func budgetClause(weeklyVariance float64) string {
	if weeklyVariance < 0 {
		return "though still under budget"
	}
	return "finishing ahead of budget"
}
