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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orderstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv(configEnvVar, path)
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(configEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(configEnvVar, "")
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".orderstat.yaml"),
		[]byte("session:\n  cache_queries: true\n"), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, config.Session.CacheQueries)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	writeConfig(t, `
session:
  verify_invariants: true
stress:
  size: 500
`)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, config.Session.VerifyInvariants)
	assert.False(t, config.Session.CacheQueries)
	assert.Equal(t, 500, config.Stress.Size)
	assert.Equal(t, defaultConfig.Stress.Seed, config.Stress.Seed)
	assert.Equal(t, " ", config.Output.Separator)
}

func TestLoadConfigEmptySeparatorFallsBack(t *testing.T) {
	writeConfig(t, "output:\n  separator: \"\"\n")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, " ", config.Output.Separator)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	writeConfig(t, "session: [unclosed\n")

	config, err := LoadConfig()
	require.Error(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigDoesNotShareDefaults(t *testing.T) {
	t.Setenv(configEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))

	config, err := LoadConfig()
	require.NoError(t, err)
	config.Stress.Size = 1

	assert.Equal(t, 100000, defaultConfig.Stress.Size)
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orderstat.yaml")
	t.Setenv(configEnvVar, path)

	var out bytes.Buffer
	displaySettings(&out)

	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "newly created")
	assert.Contains(t, out.String(), "cache_queries: false")
	assert.Contains(t, out.String(), "size: 100000")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}
