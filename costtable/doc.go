// Package costtable: see costtable.go for the CostTable type.
package costtable
