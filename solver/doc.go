// Package solver: see solver.go for the Problem descriptor and Solve entry point.
package solver
