// Package calculator implements the expression core of an interactive
// scientific calculator.
//
// An expression is lexed into tokens, implicit multiplications are made
// explicit, and the result is converted to postfix order with a shunting-yard
// pass. Evaluating the postfix sequence yields a single finite float64.
// "2pi" is the same as "2*pi", and "(1+1)(2+2)" is the same as
// "(1+1)*(2+2)". "2^3^2" is "2^(3^2)", while unary minus binds tighter than
// every binary operator, so "-2^2" is "(-2)^2".
//
// Trigonometric functions read the angle mode passed to Eval, so the same
// parsed expression can be evaluated in degrees and in radians.
package calculator
