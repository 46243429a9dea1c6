// Package ga: see config.go for GAConfig, seeder.go/evaluator.go/selector.go/
// variation.go/survival.go for the generational operators, and engine.go for
// the Solve entry point.
package ga
