// Package study is the façade a caller drives end to end: Configure a
// model document against a type registry, Build it into a solvable
// network, then Solve it with the nonlinear solver in package solver.
//
// The two-phase split mirrors a staged builder: Configure only
// stages the raw model and its registry, Build is where the model is
// validated and nodes and elements actually get constructed and wired
// together, so a
// configuration error never leaves a half-built network behind.
package study
