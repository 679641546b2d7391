// Command flyer builds the static flyer page from the inventory export.
//
// Settings come from the environment (and a .env file when present); with
// nothing set it reads FlyerData.csv and writes index.html in the working
// directory.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/JonMunkholm/TireFlyer/internal/config"
	"github.com/JonMunkholm/TireFlyer/internal/core"
	"github.com/JonMunkholm/TireFlyer/internal/logging"
	"github.com/JonMunkholm/TireFlyer/internal/render"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("build failed", "error", err, "code", core.MapError(err).Code)
		fmt.Fprintln(os.Stderr, core.FormatUserError(err))
		os.Exit(1)
	}
}

// run performs one build: read, normalize, render, write.
func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.WithFields(ctx, "input", cfg.Flyer.InputPath, "output", cfg.Flyer.OutputPath)
	logger.Info("build started", "min_discount", cfg.Flyer.MinDiscount)

	cat, err := core.BuildFile(cfg.Flyer.InputPath, cfg.Options())
	logSkipped(logger, cat.Skipped)
	if err != nil {
		return err
	}

	data := render.NewPageData(cfg.Flyer.Title, cat, cfg.Flyer.QuoteEndpoint)
	n, err := render.WriteFile(ctx, cfg.Flyer.OutputPath, render.Page(data))
	if err != nil {
		return err
	}

	logger.Info("flyer written",
		"records", len(cat.Records),
		"manufacturers", cat.Summary.Manufacturers,
		"bytes", n,
		"build_id", data.BuildID,
	)
	return nil
}

func logSkipped(logger *slog.Logger, s core.SkipStats) {
	if s.Total() == 0 {
		return
	}
	logger.Info("rows skipped", "count", s.Total())
	logger.Debug("skip detail",
		"field_count", s.FieldCount,
		"out_of_stock", s.OutOfStock,
		"below_discount", s.BelowDiscount,
	)
}
