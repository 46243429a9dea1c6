// Package chromosome: see tour.go for the Tour type.
package chromosome
