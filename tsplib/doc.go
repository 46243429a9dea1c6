// Package tsplib: see parser.go for the Parse/ParseFile entry points.
package tsplib
