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
	"runtime"
	"strings"

	"github.com/cybrota/orderstat/failure"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func diagnosticList() string {
	var b strings.Builder
	for _, class := range failure.InputClasses() {
		b.WriteString("* " + class.Line() + "\n")
	}
	return b.String()
}

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **orderstat %s**

Keeps a set of distinct 64-bit integers and answers k-th smallest element queries in logarithmic time.

Built with Go %s

# 1. Input
Commands are read from standard input, separated by spaces or newlines. Each command is a letter followed by one integer:

* **k VALUE** inserts VALUE into the set
* **m K** prints the K-th smallest value (counting from 1)
* **n VALUE** prints how many stored values are smaller than VALUE

Results are printed on one line once the input ends.

# 2. Errors
The first problem stops the run and prints one line instead of the results:

%s
# 3. Commands
* **orderstat run** processes standard input (or --file)
* **orderstat stress** checks the set against a sorted reference with random data
* **orderstat settings** shows the configuration in ~/.orderstat.yaml

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), diagnosticList())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
