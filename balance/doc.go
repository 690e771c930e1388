// Package balance checks whether the brackets in a piece of text are
// correctly nested and matched.
//
// Only the three pairs in DefaultPairs are recognized: parentheses, square
// brackets, and curly braces. Every other rune is ignored, including
// typographic quotes and other bracket-like symbols from the wider Unicode
// range. A Checker built with a custom Pairs table can recognize more.
//
// The check never fails. Malformed input is exactly what it is looking for,
// so the verdict is always reported as a value:
//
//	balance.IsBalanced("{[()]}") // true
//	balance.IsBalanced("([)]")   // false
//
// The Verdict function renders a verdict as a short localized sentence, which
// is what the balance command prints.
package balance
