package balance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-lifo/balance"
)

func TestIsBalanced(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input  string
		expect bool
	}{
		{"", true},
		{"()[]{}", true},
		{"{[()]}", true},
		{"a(b)c[d]e", true},
		{"func main() { fmt.Println(os.Args[1:]) }", true},
		{"no brackets at all", true},
		{"(]", false},
		{"([)]", false},
		{"(((", false},
		{")", false},
		{"())", false},
		{"}{", false},
		{"«(»)", true},
		{"“quoted”", true},
		{"привет (мир)", true},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, balance.IsBalanced(c.input), "input %q", c.input)
	}
}

func TestIsBalanced_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "(", "([])", "([)]", "]"} {
		first := balance.IsBalanced(in)
		assert.Equal(t, first, balance.IsBalanced(in), "input %q", in)
	}
}

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	c := balance.NewChecker(balance.DefaultPairs)

	cases := []struct {
		input  string
		expect balance.Result
	}{
		{"", balance.Result{Balanced: true, Problem: balance.NoProblem, Offset: -1}},
		{"x(y)", balance.Result{Balanced: true, Problem: balance.NoProblem, Offset: -1}},
		{"ab)", balance.Result{Problem: balance.UnmatchedCloser, Offset: 2}},
		{"[(])", balance.Result{Problem: balance.MismatchedPair, Offset: 2}},
		{"{ (", balance.Result{Problem: balance.UnclosedOpener, Offset: 2}},
		{"ж(]", balance.Result{Problem: balance.MismatchedPair, Offset: 2}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expect, c.Check(tc.input), "input %q", tc.input)
	}
}

func TestChecker_CustomPairs(t *testing.T) {
	t.Parallel()

	pairs := balance.Pairs{'>': '<', '»': '«'}
	for k, v := range balance.DefaultPairs {
		pairs[k] = v
	}
	c := balance.NewChecker(pairs)

	assert.True(t, c.IsBalanced("<a href=(x)>"))
	assert.True(t, c.IsBalanced("«цитата»"))
	assert.False(t, c.IsBalanced("<(>)"))
	assert.False(t, c.IsBalanced("«"))

	// the table is copied, so later changes have no effect
	pairs['|'] = '|'
	assert.True(t, c.IsBalanced("|"))

	// the default checker ignores what it does not know
	assert.True(t, balance.IsBalanced("<(>)"))
}

func TestChecker_SelfPaired(t *testing.T) {
	t.Parallel()

	c := balance.NewChecker(balance.Pairs{'|': '|'})
	assert.True(t, c.IsBalanced("||"))
	assert.True(t, c.IsBalanced("|x| |y|"))
	assert.False(t, c.IsBalanced("|"))
	assert.Equal(t, balance.Result{Problem: balance.UnclosedOpener, Offset: 2}, c.Check("|||"))

	pairs := balance.Pairs{'|': '|'}
	for k, v := range balance.DefaultPairs {
		pairs[k] = v
	}
	c = balance.NewChecker(pairs)
	assert.True(t, c.IsBalanced("|(|x|)|"))
	assert.False(t, c.IsBalanced("|(|)"))
}

func TestProblem_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "balanced", balance.NoProblem.String())
	assert.Equal(t, "unmatched closer", balance.UnmatchedCloser.String())
	assert.Equal(t, "mismatched pair", balance.MismatchedPair.String())
	assert.Equal(t, "unclosed opener", balance.UnclosedOpener.String())
	assert.Equal(t, "unknown problem", balance.Problem(42).String())
}
