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
	"strconv"
	"strings"

	"github.com/cybrota/orderstat/failure"
	"github.com/cybrota/orderstat/lexer"
	"github.com/cybrota/orderstat/ostree"
	"github.com/patrickmn/go-cache"
)

type command int

const (
	cmdInsert command = iota // k <value>
	cmdSelect                // m <k>
	cmdRank                  // n <value>
)

var commands = map[string]command{
	"k": cmdInsert,
	"m": cmdSelect,
	"n": cmdRank,
}

// Session processes one run of commands against its own set.
type Session struct {
	set       *ostree.Set
	cache     *cache.Cache // nil unless query caching is enabled
	verify    bool
	separator string
	results   []string
}

func NewSession(config *Config) *Session {
	s := &Session{
		set:       ostree.New(),
		verify:    config.Session.VerifyInvariants,
		separator: config.Output.Separator,
	}
	if config.Session.CacheQueries {
		s.cache = NewQueryCache()
	}
	return s
}

// Run reads commands from r until the input ends or a command fails, then
// writes either the results or one diagnostic line to w. The returned error
// is the *failure.Error that stopped the run, if any.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	if ferr := s.process(lexer.New(r)); ferr != nil {
		if ferr.Class == failure.Internal {
			log.Printf("run aborted: %v", ferr)
		}
		if _, err := fmt.Fprintln(w, ferr.Class.Line()); err != nil {
			return failure.New(failure.Internal, "", err)
		}
		return ferr
	}

	if _, err := io.WriteString(w, strings.Join(s.results, s.separator)+"\n"); err != nil {
		return failure.New(failure.Internal, "", err)
	}
	return nil
}

func (s *Session) process(lx *lexer.Lexer) *failure.Error {
	for {
		keyword, err := lx.Next()
		if errors.Is(err, lexer.ErrEndOfInput) {
			return nil
		}
		if err != nil {
			return failure.Wrap(err)
		}

		cmd, ok := commands[keyword]
		if !ok {
			return failure.New(failure.MissingCommand, keyword,
				fmt.Errorf("token %d is not a command", lx.Offset()))
		}

		arg, ferr := s.argument(lx)
		if ferr != nil {
			return ferr
		}
		if ferr := s.apply(cmd, arg); ferr != nil {
			return ferr
		}
	}
}

// argument reads the integer that must follow a command keyword.
func (s *Session) argument(lx *lexer.Lexer) (int64, *failure.Error) {
	token, err := lx.Next()
	if err != nil {
		return 0, failure.Wrap(err)
	}
	if _, isKeyword := commands[token]; isKeyword {
		return 0, failure.New(failure.EndOfInput, token,
			fmt.Errorf("token %d: command where a number was expected", lx.Offset()))
	}

	v, err := lx.Integer()
	if err != nil {
		return 0, failure.Wrap(err)
	}
	return v, nil
}

func (s *Session) apply(cmd command, arg int64) *failure.Error {
	switch cmd {
	case cmdInsert:
		if err := s.set.Insert(arg); err != nil {
			return failure.New(failure.Classify(err), strconv.FormatInt(arg, 10), err)
		}
		if s.cache != nil {
			InvalidateSelections(s.cache)
		}
		if s.verify {
			return s.checkInvariants()
		}
	case cmdSelect:
		v, err := s.selectValue(arg)
		if err != nil {
			return failure.New(failure.Classify(err), strconv.FormatInt(arg, 10), err)
		}
		s.results = append(s.results, strconv.FormatInt(v, 10))
	case cmdRank:
		s.results = append(s.results, strconv.Itoa(s.set.Rank(arg)))
	}
	return nil
}

func (s *Session) selectValue(arg int64) (int64, error) {
	k := int(arg)
	if int64(k) != arg {
		// does not fit in int, so it cannot be a valid index either
		k = 0
	}

	if s.cache == nil {
		return s.set.Select(k)
	}
	if v, ok := GetSelection(s.cache, k); ok {
		return v, nil
	}
	v, err := s.set.Select(k)
	if err != nil {
		return 0, err
	}
	CacheSelection(s.cache, k, v)
	return v, nil
}

func (s *Session) checkInvariants() *failure.Error {
	if err := s.set.Validate(); err != nil {
		return failure.New(failure.Internal, "", err)
	}
	if h, bound := s.set.Height(), ostree.MaxHeight(s.set.Len()); h > bound {
		return failure.New(failure.Internal, "",
			fmt.Errorf("height %d exceeds the AVL bound %d for %d values", h, bound, s.set.Len()))
	}
	return nil
}
