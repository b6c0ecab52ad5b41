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
	"strings"
	"testing"

	"github.com/cybrota/orderstat/failure"
)

func TestHelpMessageListsDiagnostics(t *testing.T) {
	help := getHelpMessage()

	if !strings.Contains(help, version) {
		t.Errorf("usage guide does not mention version %q", version)
	}
	for _, class := range failure.InputClasses() {
		if !strings.Contains(help, class.Line()) {
			t.Errorf("usage guide is missing diagnostic %q", class.Line())
		}
	}
	for _, keyword := range []string{"k VALUE", "m K", "n VALUE"} {
		if !strings.Contains(help, keyword) {
			t.Errorf("usage guide is missing command %q", keyword)
		}
	}
}
