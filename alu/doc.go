// Package alu implements the operation evaluator for the calculator engine.
//
// Eval is a pure function of the operation, the stack snapshot, the word
// context, and the explicit carry/overflow flags. Arithmetic follows the
// fixed-width register discipline of the original hardware: results wrap
// silently, carry records an unsigned wraparound, and overflow records a
// signed range violation. Only logical mismatches (divide by zero, a bad bit
// index, a bad register) are errors, and an error leaves every piece of
// state untouched.
package alu
