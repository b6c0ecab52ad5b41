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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// Palette holds the styles used by the stress report and the settings view.
// Session output is never styled.
type Palette struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

var currentPalette *Palette

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(name)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func newPalette(mode TerminalMode) *Palette {
	// Darker colors on light backgrounds, bright ones on dark backgrounds
	success, info, warning, errColor, muted := "10", "14", "11", "9", "245"
	if mode == TerminalModeLight {
		success, info, warning, errColor, muted = "2", "4", "3", "1", "240"
	}

	return &Palette{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(info)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(success)),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(info)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(warning)),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(errColor)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
	}
}

// GetPalette returns the palette for the detected terminal mode
func GetPalette() *Palette {
	if currentPalette == nil {
		currentPalette = newPalette(detectTerminalMode())
	}
	return currentPalette
}
