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
	"log"
	"os"
	"time"

	"github.com/cybrota/orderstat/failure"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	log.SetPrefix("orderstat: ")

	exitCode := 0
	rootCmd := newRootCmd(&exitCode)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// newRootCmd builds the command tree. Commands read cmd.InOrStdin, write to
// cmd.OutOrStdout and store the process exit code in exitCode.
func newRootCmd(exitCode *int) *cobra.Command {
	var inputPath string
	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Process insert and k-th order statistic commands from stdin",
		Long:  "Run reads k/m/n commands from standard input (or --file) and prints the results on one line",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			*exitCode = runSession(inputPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmdRun.Flags().StringVar(&inputPath, "file", "", "read commands from this file instead of stdin")

	var stressFlags StressConfig
	var quiet bool
	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Check the order-statistics set against a sorted reference",
		Long:  "Stress inserts random values and verifies select, rank and bound queries plus the AVL invariants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			stressConfig := loadConfigOrDefault().Stress
			flags := cmd.Flags()
			if flags.Changed("size") {
				stressConfig.Size = stressFlags.Size
			}
			if flags.Changed("seed") {
				stressConfig.Seed = stressFlags.Seed
			}
			if flags.Changed("min") {
				stressConfig.Min = stressFlags.Min
			}
			if flags.Changed("max") {
				stressConfig.Max = stressFlags.Max
			}
			*exitCode = runStressCommand(stressConfig, quiet, cmd.OutOrStdout())
		},
	}
	cmdStress.Flags().IntVar(&stressFlags.Size, "size", 0, "number of random insert attempts")
	cmdStress.Flags().Uint64Var(&stressFlags.Seed, "seed", 0, "random seed")
	cmdStress.Flags().Int64Var(&stressFlags.Min, "min", 0, "smallest random value")
	cmdStress.Flags().Int64Var(&stressFlags.Max, "max", 0, "largest random value")
	cmdStress.Flags().BoolVar(&quiet, "quiet", false, "hide the progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print orderstat usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the orderstat configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print orderstat version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "orderstat",
		Version: version,
		Short:   "k-th order statistics over a set of distinct integers",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to run command when no subcommand is provided
			*exitCode = runSession("", cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(cmdRun, cmdStress, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

// runSession processes one run and returns the process exit code.
func runSession(path string, stdin io.Reader, stdout io.Writer) int {
	in := stdin
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			log.Printf("Error opening input: %v", err)
			return failure.Internal.ExitCode()
		}
		defer file.Close()
		in = file
	}

	session := NewSession(loadConfigOrDefault())
	if err := session.Run(in, stdout); err != nil {
		var fe *failure.Error
		if errors.As(err, &fe) {
			return fe.Class.ExitCode()
		}
		return failure.Internal.ExitCode()
	}
	return 0
}

func runStressCommand(config StressConfig, quiet bool, stdout io.Writer) int {
	var progress func()
	if !quiet {
		bar := progressbar.NewOptions(config.Size,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Inserting random values..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		progress = func() {
			_ = bar.Add(1)
		}
	}

	report, err := runStress(config, progress)
	if report == nil {
		log.Printf("Error running stress check: %v", err)
		return failure.Internal.ExitCode()
	}
	renderStressReport(stdout, report, err)
	if err != nil {
		return failure.Internal.ExitCode()
	}
	return 0
}
