// Package routing: see client.go for the Provider/Client types.
package routing
