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

// Package lexer splits untrusted text into whitespace-separated tokens and
// decodes signed 64-bit integers from them.
package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	// ErrEndOfInput means a token was required but the input was exhausted.
	ErrEndOfInput = errors.New("lexer: end of input")
	// ErrOutOfRange means an integer token does not fit in an int64.
	ErrOutOfRange = errors.New("lexer: value out of int64 range")
	// ErrInvalidInteger means a token does not start with an optional sign
	// followed by at least one decimal digit.
	ErrInvalidInteger = errors.New("lexer: invalid integer")
)

// MaxTokenText is how many bytes of a token Next returns. Longer tokens are
// still consumed in full and their leading digit run is still decoded.
const MaxTokenText = 1024 * 1024

// maxInt64Digits is the digit count of the largest int64 magnitude.
const maxInt64Digits = 19

// TokenError reports which token failed to decode.
type TokenError struct {
	Token  string // empty when the input ended
	Offset int    // 1-based ordinal of the token in the input
	Err    error
}

func (e *TokenError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("lexer: at token %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("lexer: at token %d %q: %v", e.Offset, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// digitRun decodes the leading "[+-]?[0-9]+" run of a token one byte at a
// time. Leading zeros are dropped and at most maxInt64Digits+1 significant
// digits are kept, so memory stays bounded whatever the token length.
type digitRun struct {
	fed         int
	done        bool
	negative    bool
	digits      int
	significant []byte
}

func (r *digitRun) feed(c byte) {
	if r.done {
		return
	}
	pos := r.fed
	r.fed++
	if pos == 0 && (c == '+' || c == '-') {
		r.negative = c == '-'
		return
	}
	if c < '0' || c > '9' {
		r.done = true
		return
	}
	r.digits++
	if c == '0' && len(r.significant) == 0 {
		return
	}
	if len(r.significant) <= maxInt64Digits {
		r.significant = append(r.significant, c)
	}
}

func (r *digitRun) value() (int64, error) {
	if r.digits == 0 {
		return 0, ErrInvalidInteger
	}
	if len(r.significant) > maxInt64Digits {
		return 0, ErrOutOfRange
	}
	if len(r.significant) == 0 {
		return 0, nil
	}

	magnitude := string(r.significant)
	if r.negative {
		magnitude = "-" + magnitude
	}
	v, err := strconv.ParseInt(magnitude, 10, 64)
	if err != nil {
		// only the digit count slipped past the checks above
		return 0, ErrOutOfRange
	}
	return v, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Lexer reads tokens from an io.Reader.
type Lexer struct {
	reader *bufio.Reader
	offset int
	token  string
	run    digitRun
}

// New returns a Lexer reading from r.
func New(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReaderSize(r, 64*1024)}
}

// Offset returns the number of tokens consumed so far.
func (l *Lexer) Offset() int {
	return l.offset
}

// Next returns the next token, truncated to MaxTokenText bytes. At the end of
// input the error wraps ErrEndOfInput; read failures are returned wrapped as
// they are.
func (l *Lexer) Next() (string, error) {
	c, err := l.reader.ReadByte()
	for err == nil && isSpace(c) {
		c, err = l.reader.ReadByte()
	}
	if errors.Is(err, io.EOF) {
		return "", &TokenError{Offset: l.offset + 1, Err: ErrEndOfInput}
	}
	if err != nil {
		return "", fmt.Errorf("lexer: reading token %d: %w", l.offset+1, err)
	}

	l.offset++
	l.run = digitRun{}
	text := make([]byte, 0, 32)
	for {
		if len(text) < MaxTokenText {
			text = append(text, c)
		}
		l.run.feed(c)

		c, err = l.reader.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("lexer: reading token %d: %w", l.offset, err)
		}
		if isSpace(c) {
			break
		}
	}

	l.token = string(text)
	return l.token, nil
}

// Integer decodes the token most recently returned by Next. Only the leading
// sign and digit run counts; anything after it is ignored. The error wraps
// ErrInvalidInteger when there is no such run and ErrOutOfRange when the run
// does not fit in an int64.
func (l *Lexer) Integer() (int64, error) {
	v, err := l.run.value()
	if err != nil {
		return 0, &TokenError{Token: l.token, Offset: l.offset, Err: err}
	}
	return v, nil
}

// NextInteger consumes the next token and decodes it with Integer. The token
// is consumed even when decoding fails.
func (l *Lexer) NextInteger() (int64, error) {
	if _, err := l.Next(); err != nil {
		return 0, err
	}
	return l.Integer()
}

// ParseInteger decodes the leading run of an optional '+' or '-' followed by
// decimal digits, ignoring whatever follows it: "12abc" is 12. It returns
// ErrInvalidInteger when the token has no such run and ErrOutOfRange when the
// run lies outside the int64 range.
func ParseInteger(token string) (int64, error) {
	var run digitRun
	for i := 0; i < len(token); i++ {
		run.feed(token[i])
	}
	return run.value()
}
