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
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configEnvVar = "ORDERSTAT_CONFIG"

type OutputConfig struct {
	Separator string `yaml:"separator"`
}

type SessionConfig struct {
	CacheQueries     bool `yaml:"cache_queries"`
	VerifyInvariants bool `yaml:"verify_invariants"`
}

type StressConfig struct {
	Size int    `yaml:"size"`
	Seed uint64 `yaml:"seed"`
	Min  int64  `yaml:"min"`
	Max  int64  `yaml:"max"`
}

type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Session SessionConfig `yaml:"session"`
	Stress  StressConfig  `yaml:"stress"`
}

var defaultConfig = Config{
	Output: OutputConfig{
		Separator: " ",
	},
	Session: SessionConfig{
		CacheQueries:     false,
		VerifyInvariants: false,
	},
	Stress: StressConfig{
		Size: 100000,
		Seed: 42,
		Min:  -1000000,
		Max:  1000000,
	},
}

// LoadConfig reads the YAML config file. A missing or unreadable file yields
// the defaults; keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	config := defaultConfig

	configPath, err := getConfigPath()
	if err != nil {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read %s: %v. Using default settings.", configPath, err)
		}
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		defaults := defaultConfig
		return &defaults, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	if config.Output.Separator == "" {
		config.Output.Separator = defaultConfig.Output.Separator
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	if path := os.Getenv(configEnvVar); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".orderstat.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer) {
	palette := GetPalette()

	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "%s\n", palette.Error.Render(fmt.Sprintf("Failed to get config path: %v", err)))
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Fprintf(w, "%s\n", palette.Error.Render(fmt.Sprintf("Failed to create default config file: %v", err)))
			return
		}
		fmt.Fprintf(w, "%s\n\n", palette.Success.Render("Created default configuration at: "+configPath))
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(w, "%s\n", palette.Warning.Render(fmt.Sprintf("Failed to load configuration: %v", err)))
	}

	fmt.Fprintf(w, "%s\n", palette.Title.Render("orderstat configuration"))
	if configExists {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	}

	fmt.Fprintf(w, "%s\n", palette.Info.Render("output:"))
	fmt.Fprintf(w, "  separator: %q\n", config.Output.Separator)
	fmt.Fprintf(w, "%s\n", palette.Info.Render("session:"))
	fmt.Fprintf(w, "  cache_queries: %t\n", config.Session.CacheQueries)
	fmt.Fprintf(w, "  verify_invariants: %t\n", config.Session.VerifyInvariants)
	fmt.Fprintf(w, "%s\n", palette.Info.Render("stress:"))
	fmt.Fprintf(w, "  size: %d\n", config.Stress.Size)
	fmt.Fprintf(w, "  seed: %d\n", config.Stress.Seed)
	fmt.Fprintf(w, "  min: %d\n", config.Stress.Min)
	fmt.Fprintf(w, "  max: %d\n", config.Stress.Max)

	if !config.Session.VerifyInvariants {
		fmt.Fprintf(w, "\n%s\n", palette.Muted.Render(
			"Set session.verify_invariants: true in "+configPath+" to re-check the tree after every insert."))
	}
}
