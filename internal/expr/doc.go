// Package expr evaluates the arithmetic expressions typed into coordinate,
// depth and plunge-rate fields. It supports + - * / ** and parentheses over
// decimal literals; no variables, no calls, no side effects.
package expr
