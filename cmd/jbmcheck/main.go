// Copyright 2025 go-jbm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command jbmcheck measures the accuracy of the jbm math kernels against
// the standard library.
//
// Usage:
//
//	jbmcheck                          # embedded default checks, CSV to stdout
//	jbmcheck -config checks.yaml -out report.csv -workers 8 -v
//
// Each check samples a function evenly over an interval at float32 or
// float64 precision. The report has one CSV row per check; a summary goes
// to stderr. The exit status is 1 when a check fails.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-jbm/jbm"
	"github.com/ajroetker/go-jbm/jbm/contrib/workerpool"
)

var (
	configFile = flag.String("config", "", "YAML file of checks (default: embedded defaults)")
	outFile    = flag.String("out", "-", "CSV report file, - for stdout")
	workers    = flag.Int("workers", 0, "Worker pool size, overrides the config when > 0")
	verbose    = flag.Bool("v", false, "Log every check")
)

var errFailed = errors.New("accuracy checks failed")

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(context.Background()); err != nil {
		slog.Error("jbmcheck", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := Load(*configFile)
	if err != nil {
		return err
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	out := io.Writer(os.Stdout)
	if *outFile != "-" {
		f, err := os.Create(*outFile)
		if err != nil {
			return fmt.Errorf("creating report: %w", err)
		}
		defer f.Close()
		out = f
	}

	results, err := checkAll(ctx, cfg)
	if err != nil {
		return err
	}
	if err := writeReport(out, results); err != nil {
		return err
	}
	if summarize(os.Stderr, results) != len(results) {
		return errFailed
	}
	return nil
}

// checkAll runs the checks concurrently on a shared pool and returns the
// results in config order.
func checkAll(ctx context.Context, cfg *Config) ([]Result, error) {
	pool := workerpool.New(cfg.Workers)
	defer pool.Close()
	slog.Info("running checks",
		"checks", len(cfg.Checks),
		"workers", pool.NumWorkers(),
		"dispatch", jbm.CurrentName(),
		"fma", jbm.HasFMA())

	results := make([]Result, len(cfg.Checks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(pool.NumWorkers())
	for i, ch := range cfg.Checks {
		g.Go(func() error {
			start := time.Now()
			res, err := runCheck(ctx, pool, ch)
			if err != nil {
				return fmt.Errorf("check %s/%s: %w", ch.Function, ch.Precision, err)
			}
			slog.Debug("check done",
				"function", ch.Function,
				"precision", ch.Precision,
				"max_rel_err", res.MaxRelErr,
				"pass", res.Pass,
				"elapsed", time.Since(start))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
