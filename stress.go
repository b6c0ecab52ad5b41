// Copyright 2025 Naren Yellavula
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
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"sort"
	"time"

	"github.com/cybrota/orderstat/ostree"
)

// validateEvery is how many inserts pass between full invariant checks.
const validateEvery = 1000

type StressReport struct {
	Attempts    int
	Inserted    int
	Duplicates  int
	Selects     int
	Probes      int
	Height      int
	HeightBound int
	Elapsed     time.Duration
}

// runStress inserts random values into a fresh set and cross-checks every
// query against a sorted reference slice. progress, if set, is called once
// per insert attempt.
func runStress(config StressConfig, progress func()) (*StressReport, error) {
	if config.Size <= 0 {
		return nil, fmt.Errorf("stress size must be positive, got %d", config.Size)
	}
	if config.Min > config.Max {
		return nil, fmt.Errorf("stress range is empty: min %d > max %d", config.Min, config.Max)
	}

	start := time.Now()
	rng := rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15))
	// wraps to 0 when the range covers every int64
	span := uint64(config.Max) - uint64(config.Min) + 1
	randomValue := func() int64 {
		if span == 0 {
			return int64(rng.Uint64())
		}
		return int64(uint64(config.Min) + rng.Uint64N(span))
	}

	set := ostree.New()
	seen := make(map[int64]bool, config.Size)
	report := &StressReport{Attempts: config.Size}

	for i := 0; i < config.Size; i++ {
		v := randomValue()
		err := set.Insert(v)
		switch {
		case seen[v] && errors.Is(err, ostree.ErrDuplicate):
			report.Duplicates++
		case seen[v]:
			return report, fmt.Errorf("insert %d: stored value accepted again (err=%v)", v, err)
		case err != nil:
			return report, fmt.Errorf("insert %d: %w", v, err)
		default:
			seen[v] = true
			report.Inserted++
		}

		if (i+1)%validateEvery == 0 {
			if err := set.Validate(); err != nil {
				return report, fmt.Errorf("after %d inserts: %w", i+1, err)
			}
		}
		if progress != nil {
			progress()
		}
	}
	if err := set.Validate(); err != nil {
		return report, err
	}

	ref := make([]int64, 0, len(seen))
	for v := range seen {
		ref = append(ref, v)
	}
	slices.Sort(ref)

	if set.Len() != len(ref) {
		return report, fmt.Errorf("set holds %d values, reference holds %d", set.Len(), len(ref))
	}

	report.Height = set.Height()
	report.HeightBound = ostree.MaxHeight(set.Len())
	if report.Height > report.HeightBound {
		return report, fmt.Errorf("height %d exceeds the AVL bound %d", report.Height, report.HeightBound)
	}

	for i, want := range ref {
		got, err := set.Select(i + 1)
		if err != nil {
			return report, err
		}
		if got != want {
			return report, fmt.Errorf("select %d = %d, want %d", i+1, got, want)
		}
		if rank := set.Rank(want); rank != i {
			return report, fmt.Errorf("rank %d = %d, want %d", want, rank, i)
		}
		report.Selects++
	}
	for _, k := range []int{0, len(ref) + 1} {
		if _, err := set.Select(k); !errors.Is(err, ostree.ErrIndexOutOfRange) {
			return report, fmt.Errorf("select %d of %d was not rejected (err=%v)", k, len(ref), err)
		}
	}

	probes := min(config.Size, 10000)
	for i := 0; i < probes; i++ {
		if err := checkProbe(set, ref, randomValue()); err != nil {
			return report, err
		}
		report.Probes++
	}

	report.Elapsed = time.Since(start)
	return report, nil
}

// checkProbe compares the rank and bound queries for one arbitrary value.
func checkProbe(set *ostree.Set, ref []int64, probe int64) error {
	lower := sort.Search(len(ref), func(j int) bool { return ref[j] >= probe })
	if rank := set.Rank(probe); rank != lower {
		return fmt.Errorf("rank %d = %d, want %d", probe, rank, lower)
	}

	lb, ok := set.LowerBound(probe)
	if ok != (lower < len(ref)) || (ok && lb != ref[lower]) {
		return fmt.Errorf("lower bound of %d = %d (found=%t)", probe, lb, ok)
	}

	upper := sort.Search(len(ref), func(j int) bool { return ref[j] > probe })
	ub, ok := set.UpperBound(probe)
	if ok != (upper < len(ref)) || (ok && ub != ref[upper]) {
		return fmt.Errorf("upper bound of %d = %d (found=%t)", probe, ub, ok)
	}

	if contains := set.Contains(probe); contains != (upper > lower) {
		return fmt.Errorf("contains %d = %t", probe, contains)
	}
	return nil
}

func renderStressReport(w io.Writer, report *StressReport, runErr error) {
	palette := GetPalette()

	fmt.Fprintf(w, "%s\n", palette.Title.Render("orderstat stress report"))
	fmt.Fprintf(w, "  attempts:    %d\n", report.Attempts)
	fmt.Fprintf(w, "  inserted:    %d\n", report.Inserted)
	fmt.Fprintf(w, "  duplicates:  %d\n", report.Duplicates)
	fmt.Fprintf(w, "  selects:     %d\n", report.Selects)
	fmt.Fprintf(w, "  probes:      %d\n", report.Probes)
	fmt.Fprintf(w, "  height:      %d (bound %d)\n", report.Height, report.HeightBound)

	if runErr != nil {
		fmt.Fprintf(w, "%s\n", palette.Error.Render("FAILED: "+runErr.Error()))
		return
	}
	fmt.Fprintf(w, "  elapsed:     %s\n", report.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "%s\n", palette.Success.Render("All checks passed"))
}
