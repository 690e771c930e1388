package balance_test

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/zostay/go-lifo/balance"
)

func ExampleIsBalanced() {
	for _, in := range []string{"{[()]}", "([)]", "a(b)c[d]e", ")"} {
		fmt.Println(in, balance.IsBalanced(in))
	}

	// Output:
	// {[()]} true
	// ([)] false
	// a(b)c[d]e true
	// ) false
}

func ExampleVerdict() {
	fmt.Println(balance.Verdict(balance.IsBalanced("(]"), language.English))

	// Output:
	// Unbalanced
}
