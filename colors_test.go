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
	"testing"
)

func TestDetectTerminalMode(t *testing.T) {
	tests := []struct {
		name      string
		colorfgbg string
		termTheme string
		theme     string
		want      TerminalMode
	}{
		{name: "nothing set", want: TerminalModeDark},
		{name: "dark background", colorfgbg: "15;0", want: TerminalModeDark},
		{name: "dark background 16", colorfgbg: "7;16", want: TerminalModeDark},
		{name: "light background", colorfgbg: "0;15", want: TerminalModeLight},
		{name: "light background 255", colorfgbg: "0;default;255", want: TerminalModeLight},
		{name: "unknown background falls through", colorfgbg: "7;3", theme: "Solarized-Light", want: TerminalModeLight},
		{name: "single field ignored", colorfgbg: "15", termTheme: "light", want: TerminalModeLight},
		{name: "term theme dark", termTheme: "Dark", want: TerminalModeDark},
		{name: "term theme wins over theme", termTheme: "light", theme: "dark", want: TerminalModeLight},
		{name: "theme light", theme: "github-light", want: TerminalModeLight},
		{name: "unrecognised theme", theme: "monokai", want: TerminalModeDark},
		{name: "colorfgbg wins over theme", colorfgbg: "0;15", theme: "dark", want: TerminalModeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tt.colorfgbg)
			t.Setenv("TERM_THEME", tt.termTheme)
			t.Setenv("THEME", tt.theme)

			if got := detectTerminalMode(); got != tt.want {
				t.Errorf("detectTerminalMode() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestGetPaletteIsCached(t *testing.T) {
	if GetPalette() != GetPalette() {
		t.Errorf("GetPalette() returned different palettes")
	}
}
