package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-jbm/jbm/contrib/workerpool"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Checks)
	for _, ch := range cfg.Checks {
		assert.Contains(t, functions, ch.Function)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checks.yaml")
	data := `
workers: 3
checks:
  - function: tanh
    precision: float32
    lo: -5
    hi: 5
    samples: 100
    tolerance: 1.0e-5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	require.Len(t, cfg.Checks, 1)
	assert.Equal(t, Check{Function: "tanh", Precision: "float32", Lo: -5, Hi: 5, Samples: 100, Tolerance: 1e-5}, cfg.Checks[0])
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checks: [oops"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestValidate(t *testing.T) {
	good := Check{Function: "exp", Precision: "float64", Lo: 0, Hi: 1, Samples: 10, Tolerance: 1e-15}
	tests := []struct {
		name   string
		mutate func(*Check)
		want   string
	}{
		{"UnknownFunction", func(c *Check) { c.Function = "gamma" }, "unknown function"},
		{"BadPrecision", func(c *Check) { c.Precision = "float16" }, "precision"},
		{"EmptyRange", func(c *Check) { c.Lo, c.Hi = 1, 1 }, "empty range"},
		{"NoSamples", func(c *Check) { c.Samples = 0 }, "samples"},
		{"NoTolerance", func(c *Check) { c.Tolerance = 0 }, "tolerance"},
	}
	require.NoError(t, (&Config{Checks: []Check{good}}).Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := good
			tt.mutate(&ch)
			err := (&Config{Checks: []Check{good, ch}}).Validate()
			assert.ErrorContains(t, err, tt.want)
			assert.ErrorContains(t, err, "check 1")
		})
	}
	assert.Error(t, (&Config{}).Validate())
}

func TestRunCheck(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()
	ctx := context.Background()

	res, err := runCheck(ctx, pool, Check{Function: "exp", Precision: "float64", Lo: -10, Hi: 10, Samples: 5001, Tolerance: 1e-14})
	require.NoError(t, err)
	assert.True(t, res.Pass, "%+v", res)
	assert.Equal(t, 5001, res.Samples)

	res, err = runCheck(ctx, pool, Check{Function: "sin", Precision: "float32", Lo: -10, Hi: 10, Samples: 3000, Tolerance: 2e-6})
	require.NoError(t, err)
	assert.True(t, res.Pass, "%+v", res)

	// float32 cannot meet a float64 tolerance.
	res, err = runCheck(ctx, pool, Check{Function: "sin", Precision: "float32", Lo: 0.1, Hi: 3, Samples: 1000, Tolerance: 1e-12})
	require.NoError(t, err)
	assert.False(t, res.Pass)
	assert.Positive(t, res.Failures)
	assert.Greater(t, res.MaxRelErr, 1e-12)

	// Arguments just above 1 need a reference without cancellation.
	res, err = runCheck(ctx, pool, Check{Function: "log2", Precision: "float64", Lo: 0.5, Hi: 2, Samples: 2001, Tolerance: 4e-15})
	require.NoError(t, err)
	assert.True(t, res.Pass, "%+v", res)

	res, err = runCheck(ctx, pool, Check{Function: "log", Precision: "float64", Lo: 2, Hi: 3, Samples: 1, Tolerance: 1e-15})
	require.NoError(t, err)
	assert.True(t, res.Pass)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = runCheck(cancelled, pool, Check{Function: "exp", Precision: "float64", Lo: 0, Hi: 1, Samples: 10, Tolerance: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckAll(t *testing.T) {
	cfg := &Config{
		Workers: 2,
		Checks: []Check{
			{Function: "erf", Precision: "float64", Lo: -3, Hi: 3, Samples: 1000, Tolerance: 1e-14},
			{Function: "atan", Precision: "float32", Lo: -50, Hi: 50, Samples: 1000, Tolerance: 2e-6},
			{Function: "cbrt", Precision: "float64", Lo: -8, Hi: 8, Samples: 1000, Tolerance: 1e-15},
		},
	}
	results, err := checkAll(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, cfg.Checks[i].Function, r.Function)
		assert.True(t, r.Pass, "%+v", r)
	}

	var csv, summary bytes.Buffer
	require.NoError(t, writeReport(&csv, results))
	lines := strings.Split(strings.TrimSpace(csv.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "function,precision,lo,hi,samples,max_abs_err,max_rel_err,worst_x,failures,pass", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "erf,float64,"))

	assert.Equal(t, 3, summarize(&summary, results))
	assert.Contains(t, summary.String(), "3 of 3 checks passed over 3,000 samples")
}

func TestDefaultsPass(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	for i := range cfg.Checks {
		cfg.Checks[i].Samples = 4001
	}
	results, err := checkAll(context.Background(), cfg)
	require.NoError(t, err)
	for _, r := range results {
		assert.True(t, r.Pass, "%s/%s: max rel err %g at %g", r.Function, r.Precision, r.MaxRelErr, r.WorstX)
	}
}

func TestSummarizeFailures(t *testing.T) {
	var buf bytes.Buffer
	results := []Result{
		{Function: "exp", Precision: "float64", Samples: 10, Pass: true},
		{Function: "sin", Precision: "float32", Lo: 0, Hi: 1, Samples: 20, Failures: 4, MaxRelErr: 1e-3},
	}
	assert.Equal(t, 1, summarize(&buf, results))
	assert.Contains(t, buf.String(), "FAIL sin/float32")
	assert.Contains(t, buf.String(), "1 of 2 checks passed over 30 samples")
}
