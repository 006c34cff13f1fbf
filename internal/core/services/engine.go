package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ireum-cli/internal/logger"
	"github.com/custodia-labs/ireum-cli/internal/numerology"
)

// NewEngine builds the numerology engine and candidate optimizer for the
// given settings. The meanings store is optional; when present its entries
// add five-tier levels to pillar fortunes.
func NewEngine(
	ctx context.Context, meanings driven.StrokeMeaningStore, settings domain.EngineSettings,
) (*numerology.Engine, *numerology.Optimizer, error) {
	logger.Section("Engine Setup")
	tables := domain.DefaultTables()

	if meanings != nil {
		list, err := meanings.List(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("load stroke meanings: %w", err)
		}
		if len(list) > 0 {
			tables = tables.WithMeanings(list)
		}
		logger.Debug("Stroke meanings: %d", len(list))
	}

	logger.Debug("Stroke mode: %s, include neutral: %t", settings.StrokeMode, settings.IncludeNeutral)
	engine := numerology.NewEngine(tables, numerology.WithStrokeMode(settings.StrokeMode))
	optimizer := numerology.NewOptimizer(tables, numerology.WithNeutral(settings.IncludeNeutral))
	return engine, optimizer, nil
}
