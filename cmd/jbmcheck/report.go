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

package main

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// writeReport writes the results as CSV with a header row.
func writeReport(w io.Writer, results []Result) error {
	if err := gocsv.Marshal(results, w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// summarize prints a one-line summary and every failing check.
func summarize(w io.Writer, results []Result) (passed int) {
	p := message.NewPrinter(language.English)
	samples := 0
	for _, r := range results {
		samples += r.Samples
		if r.Pass {
			passed++
			continue
		}
		p.Fprintf(w, "FAIL %s/%s on [%g, %g]: %d of %d samples, max rel err %.3g at x = %g\n",
			r.Function, r.Precision, r.Lo, r.Hi, r.Failures, r.Samples, r.MaxRelErr, r.WorstX)
	}
	p.Fprintf(w, "%d of %d checks passed over %d samples\n", passed, len(results), samples)
	return passed
}
