// Package parsemath evaluates arithmetic expressions over float64.
//
// Expressions are written in the usual infix notation with the operators
// + - * / ^ and parentheses, e.g. "(1 + 2) * 3^2". Exponentiation is
// right-associative and binds more tightly than negation, so "2^3^2" is 512
// and "-2^2" is -4. Whitespace between tokens is ignored.
//
// Eval parses and evaluates an expression in one pass. Compile parses an
// expression into an Expr that can be printed or evaluated later. Either way,
// invalid input results in an *InvalidOperatorError for text or tokens that
// are not allowed where they appear, or an *UnableToParseError for tokens
// that don't form a complete expression or an expression that has no value,
// like a division by zero.
package parsemath
