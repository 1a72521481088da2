// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"io"
	"testing"

	"github.com/michaelmacinnis/rational/pkg/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type script []string

func (s *script) Prompt(string) (string, error) {
	if len(*s) == 0 {
		return "", io.EOF
	}

	line := (*s)[0]
	*s = (*s)[1:]

	return line, nil
}

func setup[N rational.Number](lines ...string) (*T[N], *bytes.Buffer) {
	var out bytes.Buffer

	s := script(lines)

	return New[N](&out, &s), &out
}

func values[N rational.Number](e *T[N]) []string {
	v := e.Stack()
	s := make([]string, 0, len(v))

	for _, r := range v {
		s = append(s, r.String())
	}

	return s
}

func TestArithmetic(t *testing.T) {
	for _, tc := range []struct {
		line     string
		expected string
	}{
		{"1/2 1/3 +", "2/5"},
		{"3/4 1/2 -", "1/1"},
		{"1/2 2/3 *", "1/3"},
		{"18/25 6 /", "3/25"},
		{"-3/8 abs", "3/8"},
		{"1/2 neg", "-1/2"},
	} {
		e, _ := setup[int]()

		require.NoError(t, e.Evaluate(tc.line), tc.line)
		assert.Equal(t, []string{tc.expected}, values(e), tc.line)
	}
}

func TestRelational(t *testing.T) {
	e, out := setup[int]()

	require.NoError(t, e.Evaluate("3/4 9/14 > < == != >= <="))

	assert.Equal(t, "true\nfalse\nfalse\ntrue\ntrue\nfalse\n", out.String())
	assert.Equal(t, []string{"3/4", "9/14"}, values(e))
}

func TestStatistics(t *testing.T) {
	const six = "2/7 2/5 10/11 4/12 4/8 10/12"

	for _, tc := range []struct {
		line     string
		expected []string
	}{
		{six + " sum", []string{"18/25"}},
		{six + " mean", []string{"3/25"}},
		{six + " median", []string{"1/7"}},
		{"2/7 2/5 10/11 4/12 4/8 median", []string{"2/5"}},
		{"5/6 2/7 1/2 sort", []string{"2/7", "1/2", "5/6"}},
	} {
		e, _ := setup[int64]()

		require.NoError(t, e.Evaluate(tc.line), tc.line)
		assert.Equal(t, tc.expected, values(e), tc.line)
	}
}

func TestStackCommands(t *testing.T) {
	e, out := setup[int]()

	require.NoError(t, e.Evaluate("1 2 r f"))
	assert.Equal(t, "1/1\n2/1\n", out.String())

	require.NoError(t, e.Evaluate("d p"))
	assert.Equal(t, []string{"2/1", "1/1", "1/1"}, values(e))

	require.NoError(t, e.Evaluate("x x"))
	assert.Equal(t, []string{"2/1"}, values(e))

	require.NoError(t, e.Evaluate("c"))
	assert.Empty(t, values(e))
}

func TestFailureRestoresStack(t *testing.T) {
	e, _ := setup[int]()

	err := e.Evaluate("1/2 + 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 1 value, stack has 0")
	assert.Equal(t, []string{"1/2"}, values(e))

	err = e.Evaluate("0 /")
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)
	assert.Equal(t, []string{"1/2", "0/1"}, values(e))

	err = e.Evaluate("c mean")
	assert.ErrorIs(t, err, rational.ErrEmpty)
	assert.Empty(t, values(e))
}

func TestBadTokens(t *testing.T) {
	e, _ := setup[int]()

	assert.ErrorIs(t, e.Evaluate("frobnicate"), ErrUnknown)
	assert.ErrorIs(t, e.Evaluate("1/0"), rational.ErrZeroDenominator)
	assert.ErrorIs(t, e.Evaluate("1/2/3"), ErrUnknown)
	assert.Empty(t, values(e))
}

func TestQuit(t *testing.T) {
	e, _ := setup[int]()

	assert.ErrorIs(t, e.Evaluate("1 q 2"), ErrQuit)
	assert.Equal(t, []string{"1/1"}, values(e))
}

func TestRead(t *testing.T) {
	e, out := setup[int]("abc", "3", "0", "3", "-6")

	require.NoError(t, e.Evaluate("read"))

	assert.Equal(t, []string{"-1/2"}, values(e))
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("Error on input - try again...")))
}

func TestReadEOF(t *testing.T) {
	e, _ := setup[int]("7")

	require.NoError(t, e.Evaluate("5"))
	assert.ErrorIs(t, e.Evaluate("read"), io.EOF)
	assert.Equal(t, []string{"5/1"}, values(e))
}

func TestHelp(t *testing.T) {
	e, out := setup[int]()

	require.NoError(t, e.Evaluate("help m*"))
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("\n")))
	assert.Contains(t, out.String(), "mean")
	assert.Contains(t, out.String(), "median")

	out.Reset()

	require.NoError(t, e.Evaluate("help"))
	assert.Contains(t, out.String(), "read")
	assert.Contains(t, out.String(), "quit")
}

func TestFloatComponents(t *testing.T) {
	e, out := setup[float64]()

	require.NoError(t, e.Evaluate("0.5 1.5 p + p"))
	assert.Equal(t, "3/2\n1/1\n", out.String())
}

func TestNonFiniteFloats(t *testing.T) {
	e, _ := setup[float64]()

	assert.ErrorIs(t, e.Evaluate("nan"), ErrUnknown)
	assert.ErrorIs(t, e.Evaluate("1/inf"), ErrUnknown)
	assert.Empty(t, values(e))

	assert.ErrorIs(t, e.Evaluate("1e200 1e200 *"), rational.ErrNotFinite)
	assert.Equal(t, []string{"1e+200/1", "1e+200/1"}, values(e))
}
