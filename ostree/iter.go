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

// Min returns the smallest value in the set.
func (s *Set) Min() (int64, bool) {
	n := s.root
	if n == nil {
		return 0, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value in the set.
func (s *Set) Max() (int64, bool) {
	n := s.root
	if n == nil {
		return 0, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// LowerBound returns the smallest value that is >= value.
func (s *Set) LowerBound(value int64) (int64, bool) {
	var found *node
	n := s.root
	for n != nil {
		if n.value >= value {
			found = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if found == nil {
		return 0, false
	}
	return found.value, true
}

// UpperBound returns the smallest value that is strictly greater than value.
func (s *Set) UpperBound(value int64) (int64, bool) {
	var found *node
	n := s.root
	for n != nil {
		if n.value > value {
			found = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if found == nil {
		return 0, false
	}
	return found.value, true
}

// Ascend calls fn for every value in ascending order until fn returns false.
func (s *Set) Ascend(fn func(value int64) bool) {
	ascend(s.root, fn)
}

func ascend(n *node, fn func(int64) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.value) {
		return false
	}
	return ascend(n.right, fn)
}

// Values returns every value in ascending order.
func (s *Set) Values() []int64 {
	values := make([]int64, 0, s.Len())
	s.Ascend(func(v int64) bool {
		values = append(values, v)
		return true
	})
	return values
}
