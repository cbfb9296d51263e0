package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/atlasops/vpcatlas/internal/aws"
	"github.com/atlasops/vpcatlas/internal/diagram"
	"github.com/atlasops/vpcatlas/internal/model"
	"github.com/atlasops/vpcatlas/internal/report"
)

// Config carries the resolved CLI/viper settings for one run.
type Config struct {
	Region    string
	OutputDir string
	MockMode  bool
	Verbose   bool
}

// Collector is any source of a network model: the EC2 collector, the
// mock collector, or a test double.
type Collector interface {
	Collect(ctx context.Context) (*model.NetworkModel, error)
}

// NewLogger builds the run logger. Verbose lowers the level to debug.
func NewLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Run executes the full pipeline: collect, validate, emit, persist.
// It returns the collected model and the diagram text so callers can
// print or post-process without re-reading the artifacts.
func Run(ctx context.Context, cfg Config) (*model.NetworkModel, string, error) {
	logger := NewLogger(cfg.Verbose)

	collector, err := buildCollector(ctx, cfg, logger)
	if err != nil {
		return nil, "", err
	}

	start := time.Now()
	logger.Info("collecting network resources", "region", cfg.Region, "mock", cfg.MockMode)
	m, err := collector.Collect(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to collect network resources: %w", err)
	}
	logger.Debug("collection finished", "vpcs", len(m.VPCs), "elapsed", time.Since(start))

	for _, w := range diagram.Lint(m) {
		logger.Warn("degenerate input", "resource", w.Resource, "id", w.ID, "detail", w.Message)
	}

	out, err := diagram.Emit(m)
	if err != nil {
		return nil, "", err
	}

	if err := report.WriteAll(m, out, cfg.OutputDir); err != nil {
		return nil, "", err
	}
	logger.Info("artifacts written", "dir", cfg.OutputDir)

	return m, out, nil
}

func buildCollector(ctx context.Context, cfg Config, logger *log.Logger) (Collector, error) {
	if cfg.MockMode {
		return aws.NewMockCollector(), nil
	}

	client, err := aws.NewClient(ctx, cfg.Region)
	if err != nil {
		return nil, err
	}
	account, err := client.VerifyIdentity(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("credentials verified", "account", account)

	return aws.NewNetworkCollector(client.Config), nil
}
