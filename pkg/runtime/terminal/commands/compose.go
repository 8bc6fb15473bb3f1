package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/domain"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/config"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/metrics"
	reportsvc "github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/report"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/supplement"
)

// reportFlags are the flags shared by the preview and generate commands.
type reportFlags struct {
	profilesPath  string
	profile       string
	currency      string
	shortSupply   string
	marketReturns string
}

func (f *reportFlags) inputs(ctx context.Context) (domain.ReportInputs, error) {
	registry, err := config.NewRegistry(f.profilesPath)
	if err != nil {
		return domain.ReportInputs{}, fmt.Errorf("failed to open profiles file: %w", err)
	}
	return registry.GetInputs(ctx, f.profile)
}

func (f *reportFlags) compose(ctx context.Context) (domain.GeneratedReport, domain.ReportInputs, error) {
	in, err := f.inputs(ctx)
	if err != nil {
		return domain.GeneratedReport{}, domain.ReportInputs{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.GeneratedReport{}, domain.ReportInputs{}, fmt.Errorf("refusing to generate: %w", err)
	}

	composer := reportsvc.NewComposer(f.currency)
	composed := composer.Compose(
		in,
		metrics.Compute(in),
		metrics.BuildScenarios(in),
		loadAttachment(f.shortSupply, reportsvc.TitleShortSupply),
		loadAttachment(f.marketReturns, reportsvc.TitleMarketReturns),
	)
	return composed, in, nil
}

// loadAttachment reads an optional attachment path. A missing path means
// the attachment was not supplied; an unreadable or unparseable file
// becomes a failure result that ends up in the document.
func loadAttachment(path, title string) *domain.TableLoadResult {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		result := domain.LoadFailure(fmt.Sprintf("failed to open %s: %v", title, err))
		return &result
	}
	defer f.Close()

	result := supplement.Load(f, filepath.Base(path), title)
	return &result
}
