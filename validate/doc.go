// Package validate independently re-checks a solved row against the
// fabrication constraints and recomputes its cost, without using package
// state or package table at all. It exists as a cross-check: since the
// solvers and the validator are built from the same prose description but
// share no code, a violation the validator catches that the solver missed
// indicates the solver (not the validator) has a bug, and vice versa.
package validate
