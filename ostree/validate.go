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

package ostree

import (
	"fmt"
	"math"
)

// InvariantError describes the first structural violation found by Validate.
type InvariantError struct {
	Value  int64 // value of the node where the violation was detected
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ostree: invariant violated at %d: %s", e.Value, e.Reason)
}

// Validate walks the whole tree and checks ordering, balance, and the stored
// height and size of every node. It runs in O(n).
func (s *Set) Validate() error {
	return validate(s.root, nil, nil)
}

// validate checks the subtree rooted at n, whose values must lie strictly
// between lo and hi when those are set.
func validate(n *node, lo, hi *int64) error {
	if n == nil {
		return nil
	}
	if lo != nil && n.value <= *lo {
		return &InvariantError{Value: n.value, Reason: fmt.Sprintf("not greater than ancestor %d", *lo)}
	}
	if hi != nil && n.value >= *hi {
		return &InvariantError{Value: n.value, Reason: fmt.Sprintf("not less than ancestor %d", *hi)}
	}
	if err := validate(n.left, lo, &n.value); err != nil {
		return err
	}
	if err := validate(n.right, &n.value, hi); err != nil {
		return err
	}

	if want := max(height(n.left), height(n.right)) + 1; n.height != want {
		return &InvariantError{Value: n.value, Reason: fmt.Sprintf("height %d, want %d", n.height, want)}
	}
	if want := size(n.left) + size(n.right) + 1; n.size != want {
		return &InvariantError{Value: n.value, Reason: fmt.Sprintf("size %d, want %d", n.size, want)}
	}
	if bf := balanceFactor(n); bf < -1 || bf > 1 {
		return &InvariantError{Value: n.value, Reason: fmt.Sprintf("balance factor %d", bf)}
	}
	return nil
}

// MaxHeight returns the largest height an AVL tree holding n values can have.
func MaxHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(1.4405*math.Log2(float64(n)+2) - 0.3277))
}
