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
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStress(t *testing.T) {
	calls := 0
	report, err := runStress(StressConfig{Size: 3000, Seed: 7, Min: -500, Max: 500}, func() { calls++ })
	require.NoError(t, err)

	assert.Equal(t, 3000, calls)
	assert.Equal(t, 3000, report.Attempts)
	assert.Equal(t, report.Attempts, report.Inserted+report.Duplicates)
	assert.LessOrEqual(t, report.Inserted, 1001)
	assert.Positive(t, report.Duplicates)
	assert.Equal(t, report.Inserted, report.Selects)
	assert.Equal(t, 3000, report.Probes)
	assert.LessOrEqual(t, report.Height, report.HeightBound)
}

func TestRunStressFullRange(t *testing.T) {
	report, err := runStress(StressConfig{Size: 500, Seed: 1, Min: math.MinInt64, Max: math.MaxInt64}, nil)
	require.NoError(t, err)
	assert.Equal(t, 500, report.Inserted+report.Duplicates)
}

func TestRunStressSingleValueRange(t *testing.T) {
	report, err := runStress(StressConfig{Size: 10, Seed: 3, Min: 4, Max: 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 9, report.Duplicates)
}

func TestRunStressRejectsBadConfig(t *testing.T) {
	_, err := runStress(StressConfig{Size: 0, Min: 0, Max: 10}, nil)
	assert.Error(t, err)

	_, err = runStress(StressConfig{Size: 10, Min: 5, Max: 1}, nil)
	assert.Error(t, err)
}

func TestRenderStressReport(t *testing.T) {
	report := &StressReport{Attempts: 10, Inserted: 8, Duplicates: 2, Selects: 8, Height: 4, HeightBound: 4}

	var out bytes.Buffer
	renderStressReport(&out, report, nil)
	assert.Contains(t, out.String(), "duplicates:  2")
	assert.Contains(t, out.String(), "All checks passed")

	out.Reset()
	renderStressReport(&out, report, errors.New("select 3 = 4, want 5"))
	assert.Contains(t, out.String(), "FAILED: select 3 = 4, want 5")
	assert.NotContains(t, out.String(), "All checks passed")
}
