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

// Package failure defines the failure taxonomy of an orderstat run.
//
// Every error that ends a run maps to exactly one Class. The class decides
// the single diagnostic line written to standard output and the exit code.
package failure

import (
	"errors"
	"fmt"

	"github.com/cybrota/orderstat/lexer"
	"github.com/cybrota/orderstat/ostree"
)

// Class is a stable failure category.
type Class string

const (
	Duplicate       Class = "DUPLICATE"
	IndexOutOfRange Class = "INDEX_OUT_OF_RANGE"
	EndOfInput      Class = "END_OF_INPUT"
	OutOfRange      Class = "OUT_OF_RANGE"
	InvalidInteger  Class = "INVALID_INTEGER"
	MissingCommand  Class = "MISSING_COMMAND"
	Internal        Class = "INTERNAL"
)

var lines = map[Class]string{
	Duplicate:       "You entered a duplicate. Error.",
	IndexOutOfRange: "Wrong index for k-th order statistic. Error.",
	EndOfInput:      "NO number followed. Error.",
	OutOfRange:      "Value out of long long range. Error.",
	InvalidInteger:  "Invalid integer argument. Error.",
	MissingCommand:  "NO k/m/n followed. Error.",
	Internal:        "Internal failure. Error.",
}

// InputClasses lists the classes caused by the input itself, in the order
// they are documented.
func InputClasses() []Class {
	return []Class{IndexOutOfRange, EndOfInput, Duplicate, OutOfRange, InvalidInteger, MissingCommand}
}

// Line returns the diagnostic line for the class, without a line terminator.
func (c Class) Line() string {
	if line, ok := lines[c]; ok {
		return line
	}
	return lines[Internal]
}

// ExitCode returns the process exit code for this failure class.
func (c Class) ExitCode() int {
	switch c {
	case Internal:
		return 10
	default:
		return 2
	}
}

// Error is the structured error that ends a run.
type Error struct {
	Class Class
	Token string // offending token, if any
	Cause error
}

func (e *Error) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("failure: %s at %q: %v", e.Class, e.Token, e.Cause)
	}
	return fmt.Sprintf("failure: %s: %v", e.Class, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error of the given class.
func New(class Class, token string, cause error) *Error {
	return &Error{Class: class, Token: token, Cause: cause}
}

// Classify maps a component error onto its failure class. Errors that are
// already *Error keep their class; anything unrecognised is Internal.
func Classify(err error) Class {
	var fe *Error
	switch {
	case err == nil:
		return ""
	case errors.As(err, &fe):
		return fe.Class
	case errors.Is(err, ostree.ErrDuplicate):
		return Duplicate
	case errors.Is(err, ostree.ErrIndexOutOfRange):
		return IndexOutOfRange
	case errors.Is(err, lexer.ErrEndOfInput):
		return EndOfInput
	case errors.Is(err, lexer.ErrOutOfRange):
		return OutOfRange
	case errors.Is(err, lexer.ErrInvalidInteger):
		return InvalidInteger
	default:
		return Internal
	}
}

// Wrap classifies err and wraps it in an *Error. It returns nil for nil.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	var tokErr *lexer.TokenError
	token := ""
	if errors.As(err, &tokErr) {
		token = tokErr.Token
	}
	return New(Classify(err), token, err)
}
