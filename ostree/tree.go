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

// Package ostree implements an order-statistics set of int64 values backed by
// an AVL tree whose nodes carry subtree sizes.
//
// Every node owns its two child slots. Functions that restructure a subtree
// take its root and return the new root, which the caller stores back into
// the slot it came from, so no parent pointers are ever kept.
package ostree

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is returned by Insert when the value is already stored.
	ErrDuplicate = errors.New("ostree: duplicate value")
	// ErrIndexOutOfRange is returned by Select for k outside [1, Len()].
	ErrIndexOutOfRange = errors.New("ostree: index out of range")
)

type node struct {
	value  int64
	height int
	size   int // nodes in this subtree, including itself
	left   *node
	right  *node
}

// Set is an ordered collection of distinct int64 values. The zero value is an
// empty set ready to use. A Set is not safe for concurrent use.
type Set struct {
	root *node
}

// New returns an empty Set.
func New() *Set {
	return &Set{root: nil}
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func size(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

// update recomputes the bookkeeping of n from its children.
func update(n *node) {
	n.height = max(height(n.left), height(n.right)) + 1
	n.size = size(n.left) + size(n.right) + 1
}

func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func rotateLeft(n *node) *node {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	// n is now below pivot, so it goes first
	update(n)
	update(pivot)

	return pivot
}

func rotateRight(n *node) *node {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	update(n)
	update(pivot)

	return pivot
}

func rebalance(n *node) *node {
	bf := balanceFactor(n)

	// Left-heavy
	if bf > 1 {
		if balanceFactor(n.left) >= 0 {
			return rotateRight(n)
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	// Right-heavy
	if bf < -1 {
		if balanceFactor(n.right) <= 0 {
			return rotateLeft(n)
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return size(s.root)
}

// Height returns the height of the tree, 0 for an empty set.
func (s *Set) Height() int {
	return height(s.root)
}

// Clear removes every value from the set.
func (s *Set) Clear() {
	s.root = nil
}

// Insert adds value to the set. It returns an error wrapping ErrDuplicate,
// and leaves the tree untouched, if the value is already present.
func (s *Set) Insert(value int64) error {
	root, err := insert(s.root, value)
	if err != nil {
		return err
	}
	s.root = root
	return nil
}

func insert(n *node, value int64) (*node, error) {
	if n == nil {
		return &node{value: value, height: 1, size: 1}, nil
	}

	var err error
	switch {
	case value < n.value:
		n.left, err = insert(n.left, value)
	case value > n.value:
		n.right, err = insert(n.right, value)
	default:
		return n, fmt.Errorf("insert %d: %w", value, ErrDuplicate)
	}
	if err != nil {
		return n, err
	}

	update(n)
	return rebalance(n), nil
}

// Select returns the k-th smallest value, counting from 1.
func (s *Set) Select(k int) (int64, error) {
	if k < 1 || k > s.Len() {
		return 0, fmt.Errorf("select %d of %d: %w", k, s.Len(), ErrIndexOutOfRange)
	}

	n := s.root
	for {
		leftSize := size(n.left)
		switch {
		case k == leftSize+1:
			return n.value, nil
		case k <= leftSize:
			n = n.left
		default:
			k -= leftSize + 1
			n = n.right
		}
	}
}

// Rank returns how many values in the set are strictly less than value. For
// a stored value this is its 0-based position in sorted order.
func (s *Set) Rank(value int64) int {
	rank := 0
	n := s.root
	for n != nil {
		if value <= n.value {
			n = n.left
		} else {
			rank += size(n.left) + 1
			n = n.right
		}
	}
	return rank
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value int64) bool {
	n := s.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}
