package local

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	ks  []int
	err error
}

func (r *recorder) handle(k int) error {
	r.ks = append(r.ks, k)
	return r.err
}

func TestConsole_Run(t *testing.T) {

	type test struct {
		input  string
		ks     []int
		output []string
	}

	tests := map[string]test{
		"exit": {
			input:  "exit\n3\n",
			output: []string{farewell},
		},
		"exit-case-insensitive": {
			input:  "2\nExIt\n",
			ks:     []int{2},
			output: []string{farewell},
		},
		"invalid-then-valid": {
			input:  "abc\n3\nexit\n",
			ks:     []int{3},
			output: []string{invalid, farewell},
		},
		"end-of-input": {
			input:  "1\n2",
			ks:     []int{1, 2},
			output: []string{farewell},
		},
		"empty-line": {
			input:  "\nexit\n",
			output: []string{invalid},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			r := &recorder{}
			err := NewConsole(strings.NewReader(tt.input), &out).Run(context.Background(), r.handle)
			require.NoError(t, err)
			assert.Equal(t, tt.ks, r.ks)
			for _, o := range tt.output {
				assert.Contains(t, out.String(), o)
			}
			assert.Contains(t, out.String(), prompt)
		})
	}
}

func TestConsole_HandlerError(t *testing.T) {
	var out bytes.Buffer
	r := &recorder{err: errors.New("k must be at least 1")}
	err := NewConsole(strings.NewReader("0\n-1\nexit\n"), &out).Run(context.Background(), r.handle)
	require.NoError(t, err)
	assert.Equal(t, []int{0, -1}, r.ks)
	assert.Equal(t, 2, strings.Count(out.String(), "error: k must be at least 1"))
	assert.Equal(t, 3, strings.Count(out.String(), prompt))
}

func TestConsole_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &recorder{}
	err := NewConsole(strings.NewReader("3\n"), &bytes.Buffer{}).Run(ctx, r.handle)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.ks)
}
