package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go.uber.org/zap"

	"github.com/peter-kozarec/sharpedge/internal/dbg"
	"github.com/peter-kozarec/sharpedge/pkg/data/duckdb"
	"github.com/peter-kozarec/sharpedge/pkg/data/mapper"
	"github.com/peter-kozarec/sharpedge/pkg/data/table"
	"github.com/peter-kozarec/sharpedge/pkg/export"
	"github.com/peter-kozarec/sharpedge/pkg/ratio"
	"github.com/peter-kozarec/sharpedge/pkg/utility"
	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

var (
	inputPath = flag.String("input", "", "delimited observation file")
	column    = flag.String("column", "", "observation column, name or zero-based index")
	delimiter = flag.String("delimiter", DefaultDelimiter, "input field delimiter")

	duckdbPath   = flag.String("duckdb", "", "duckdb database file")
	duckdbTable  = flag.String("table", "", "duckdb table holding the series")
	duckdbColumn = flag.String("db-column", "", "duckdb column holding the series")

	binPath = flag.String("bin", "", "packed little-endian float64 observation file")

	dataFormat  = flag.String("format", DefaultDataFormat, "data format: auto, percent, decimal or absolute")
	baseCapital = flag.String("capital", "", "base capital for absolute PnL series")
	riskFree    = flag.String("risk-free", DefaultRiskFreeRate, "annual risk-free rate in percent")
	targetRate  = flag.String("target", "", "annual target rate in percent, defaults to the risk-free rate")
	periods     = flag.String("periods", DefaultPeriodsPerYear, "sampling periods per year")

	exportPath    = flag.String("export", "", "write result and series as csv")
	histogramPath = flag.String("histogram", "", "write a histogram png of the series")
	histogramBins = flag.Int("bins", export.DefaultHistogramBins, "histogram bin count")

	development = flag.Bool("dev", false, "use the development logger")
)

func main() {
	flag.Parse()

	logger := dbg.NewLogger(*development)
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	logger.Info(fmt.Sprintf("sharpedge %s", Version),
		zap.String("run_id", utility.GetRunID().String()))
	defer logger.Info("done")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	observations, err := loadObservations(ctx)
	if err != nil {
		logger.Fatal("error loading observations", zap.Error(err))
	}

	cfg, err := buildConfiguration()
	if err != nil {
		logger.Fatal("error building configuration", zap.Error(err))
	}

	result, err := ratio.Compute(observations, cfg)
	if err != nil {
		logger.Fatal("error computing ratios", zap.Error(err))
	}
	result.Print(logger)

	if *exportPath != "" {
		if err := writeExport(result, observations); err != nil {
			logger.Fatal("error exporting result", zap.Error(err))
		}
		logger.Info("result exported", zap.String("path", *exportPath))
	}

	if *histogramPath != "" {
		if err := writeHistogram(observations); err != nil {
			logger.Fatal("error rendering histogram", zap.Error(err))
		}
		logger.Info("histogram rendered", zap.String("path", *histogramPath))
	}
}

func loadObservations(ctx context.Context) ([]fixed.Point, error) {
	switch {
	case *inputPath != "":
		return loadFromTable()
	case *duckdbPath != "":
		return loadFromDuckDB(ctx)
	case *binPath != "":
		return loadFromBinary()
	default:
		return nil, errors.New("one of -input, -duckdb or -bin is required")
	}
}

func loadFromTable() ([]fixed.Point, error) {
	comma := []rune(*delimiter)
	if len(comma) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", *delimiter)
	}

	t, err := table.Read(*inputPath, comma[0])
	if err != nil {
		return nil, err
	}

	index := 0
	if *column != "" {
		if index, err = strconv.Atoi(*column); err != nil {
			if index, err = t.ColumnIndex(*column); err != nil {
				return nil, err
			}
		} else if index < 0 {
			return nil, fmt.Errorf("column index must not be negative, got %d", index)
		}
	}
	return t.Observations(index)
}

func loadFromDuckDB(ctx context.Context) ([]fixed.Point, error) {
	if *duckdbTable == "" || *duckdbColumn == "" {
		return nil, errors.New("-duckdb requires -table and -db-column")
	}

	reader := duckdb.NewReader(*duckdbPath)
	if err := reader.Connect(); err != nil {
		return nil, err
	}
	defer reader.Close()

	var observations []fixed.Point
	err := reader.LoadObservations(ctx, *duckdbTable, *duckdbColumn, func(p fixed.Point) error {
		observations = append(observations, p)
		return nil
	})
	return observations, err
}

func loadFromBinary() ([]fixed.Point, error) {
	reader := mapper.NewSeriesReader(*binPath)
	if err := reader.Open(); err != nil {
		return nil, err
	}
	defer reader.Close()

	return reader.ReadAll()
}

func buildConfiguration() (ratio.Configuration, error) {
	format, err := ratio.ParseFormat(*dataFormat)
	if err != nil {
		return ratio.Configuration{}, err
	}

	rf, err := fixed.Parse(*riskFree)
	if err != nil {
		return ratio.Configuration{}, fmt.Errorf("invalid risk-free rate %q: %w", *riskFree, err)
	}

	n, err := fixed.Parse(*periods)
	if err != nil {
		return ratio.Configuration{}, fmt.Errorf("invalid periods per year %q: %w", *periods, err)
	}

	cfg := ratio.Configuration{
		AnnualRiskFreeRate: rf,
		PeriodsPerYear:     n,
		Format:             format,
	}

	if *targetRate != "" {
		t, err := fixed.Parse(*targetRate)
		if err != nil {
			return ratio.Configuration{}, fmt.Errorf("invalid target rate %q: %w", *targetRate, err)
		}
		cfg.TargetRate = &t
	}

	if *baseCapital != "" {
		c, err := fixed.Parse(*baseCapital)
		if err != nil {
			return ratio.Configuration{}, fmt.Errorf("invalid base capital %q: %w", *baseCapital, err)
		}
		cfg.BaseCapital = c
	}

	return cfg, nil
}

func writeExport(result ratio.Result, observations []fixed.Point) error {
	f, err := os.Create(*exportPath)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	return export.WriteCSV(f, result, observations, utility.GetRunID().String())
}

func writeHistogram(observations []fixed.Point) error {
	buf, err := export.Histogram(observations, *histogramBins, "Observation distribution")
	if err != nil {
		return err
	}
	return os.WriteFile(*histogramPath, buf, 0o644)
}
