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

package failure

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/cybrota/orderstat/lexer"
	"github.com/cybrota/orderstat/ostree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	_, lexErr := lexer.New(strings.NewReader("99999999999999999999")).NextInteger()

	tests := []struct {
		name string
		err  error
		want Class
	}{
		{"nil", nil, ""},
		{"duplicate", fmt.Errorf("insert 5: %w", ostree.ErrDuplicate), Duplicate},
		{"index", fmt.Errorf("select 4: %w", ostree.ErrIndexOutOfRange), IndexOutOfRange},
		{"end of input", &lexer.TokenError{Offset: 3, Err: lexer.ErrEndOfInput}, EndOfInput},
		{"out of range", lexErr, OutOfRange},
		{"invalid", lexer.ErrInvalidInteger, InvalidInteger},
		{"already classified", New(MissingCommand, "x", nil), MissingCommand},
		{"unknown", io.ErrUnexpectedEOF, Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestLines(t *testing.T) {
	assert.Equal(t, "Wrong index for k-th order statistic. Error.", IndexOutOfRange.Line())
	assert.Equal(t, "NO number followed. Error.", EndOfInput.Line())
	assert.Equal(t, "You entered a duplicate. Error.", Duplicate.Line())
	assert.Equal(t, "Value out of long long range. Error.", OutOfRange.Line())
	assert.Equal(t, Internal.Line(), Class("BOGUS").Line())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, Duplicate.ExitCode())
	assert.Equal(t, 2, MissingCommand.ExitCode())
	assert.Equal(t, 10, Internal.ExitCode())
}

func TestWrapKeepsToken(t *testing.T) {
	_, err := lexer.New(strings.NewReader("abc")).NextInteger()
	fe := Wrap(err)
	require.NotNil(t, fe)
	assert.Equal(t, InvalidInteger, fe.Class)
	assert.Equal(t, "abc", fe.Token)
	assert.True(t, errors.Is(fe, lexer.ErrInvalidInteger))

	assert.Nil(t, Wrap(nil))
	same := New(Duplicate, "5", ostree.ErrDuplicate)
	assert.Same(t, same, Wrap(same))
}

func TestInputClasses(t *testing.T) {
	classes := InputClasses()
	assert.Len(t, classes, 6)
	assert.NotContains(t, classes, Internal)
	for _, c := range classes {
		assert.Equal(t, 2, c.ExitCode(), "class %s", c)
		assert.NotEqual(t, Internal.Line(), c.Line(), "class %s", c)
	}
}
