package balance

import (
	"github.com/zostay/go-lifo/stack"
)

// Pairs maps each closing symbol to the opening symbol it must match.
type Pairs map[rune]rune

// DefaultPairs is the bracket table used by IsBalanced.
var DefaultPairs = Pairs{
	')': '(',
	']': '[',
	'}': '{',
}

// Problem names the first thing found wrong with the input.
type Problem int

const (
	// NoProblem means the input is balanced.
	NoProblem Problem = iota

	// UnmatchedCloser means a closing symbol was found while no opener was
	// waiting to be closed.
	UnmatchedCloser

	// MismatchedPair means a closing symbol was found, but the most recent
	// open symbol belongs to a different pair.
	MismatchedPair

	// UnclosedOpener means the input ended while openers were still waiting
	// to be closed.
	UnclosedOpener
)

// String returns a human readable name for the problem.
func (p Problem) String() string {
	switch p {
	case NoProblem:
		return "balanced"
	case UnmatchedCloser:
		return "unmatched closer"
	case MismatchedPair:
		return "mismatched pair"
	case UnclosedOpener:
		return "unclosed opener"
	}
	return "unknown problem"
}

// Result describes the outcome of a Check.
type Result struct {
	// Balanced is the verdict.
	Balanced bool

	// Problem is the reason the input is not balanced, or NoProblem.
	Problem Problem

	// Offset is the rune offset into the input of the rune that caused the
	// problem. For UnclosedOpener it is the offset of the innermost opener
	// left unclosed. It is -1 when the input is balanced.
	Offset int
}

// Checker validates bracket nesting against a fixed Pairs table. A Checker
// holds no state between calls, so one may be shared freely.
type Checker struct {
	closers Pairs
	openers map[rune]struct{}
}

// NewChecker returns a Checker for the given pairs. The table is copied. A
// symbol may pair with itself, as in Pairs{'|': '|'}.
func NewChecker(pairs Pairs) *Checker {
	c := &Checker{
		closers: make(Pairs, len(pairs)),
		openers: make(map[rune]struct{}, len(pairs)),
	}
	for closer, opener := range pairs {
		c.closers[closer] = opener
		c.openers[opener] = struct{}{}
	}
	return c
}

var defaultChecker = NewChecker(DefaultPairs)

// IsBalanced reports whether the brackets of DefaultPairs in input are
// correctly nested and matched. The empty string is balanced.
func IsBalanced(input string) bool {
	return defaultChecker.IsBalanced(input)
}

// IsBalanced reports whether the brackets in input are correctly nested and
// matched.
func (c *Checker) IsBalanced(input string) bool {
	return c.Check(input).Balanced
}

// opened records an opener and where it was seen.
type opened struct {
	symbol rune
	offset int
}

// Check scans input once and reports the verdict along with the first
// problem found.
func (c *Checker) Check(input string) Result {
	open := &stack.Stack[opened]{}

	offset := 0
	for _, r := range input {
		want, isCloser := c.closers[r]
		_, isOpener := c.openers[r]

		switch {
		case isOpener && isCloser:
			// a symbol like | closes the innermost opener it pairs with and
			// opens otherwise
			if top, err := open.Peek(); err == nil && top.symbol == want {
				open.MustPop()
			} else {
				open.Push(opened{r, offset})
			}
		case isOpener:
			open.Push(opened{r, offset})
		case isCloser:
			if open.IsEmpty() {
				return Result{Problem: UnmatchedCloser, Offset: offset}
			}

			if got := open.MustPop(); got.symbol != want {
				return Result{Problem: MismatchedPair, Offset: offset}
			}
		}

		offset++
	}

	if top, err := open.Peek(); err == nil {
		return Result{Problem: UnclosedOpener, Offset: top.offset}
	}

	return Result{Balanced: true, Problem: NoProblem, Offset: -1}
}
