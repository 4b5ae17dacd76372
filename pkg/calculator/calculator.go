// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package calculator provides integer addition and a calculator that keeps
// a history of the operations it performed.
package calculator

import (
	"fmt"
	"math"
	"strconv"
)

// Add returns the sum of two integers
func Add(a, b int) int {
	return a + b
}

// Calculator performs floating point operations and records each one
// in an ordered history.
type Calculator struct {
	name    string
	history []string
}

// New creates a calculator with an empty history
func New(name string) *Calculator {
	return &Calculator{name: name}
}

// Name returns the calculator's name
func (c *Calculator) Name() string {
	return c.name
}

// Add returns a + b and records the operation
func (c *Calculator) Add(a, b float64) float64 {
	return c.record("+", a, b, a+b)
}

// Multiply returns a * b and records the operation
func (c *Calculator) Multiply(a, b float64) float64 {
	return c.record("*", a, b, a*b)
}

// Power returns base raised to exponent and records the operation
func (c *Calculator) Power(base, exponent float64) float64 {
	return c.record("^", base, exponent, math.Pow(base, exponent))
}

// History returns a copy of the recorded operations, oldest first
func (c *Calculator) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// Clear drops all recorded operations
func (c *Calculator) Clear() {
	c.history = c.history[:0]
}

func (c *Calculator) record(op string, a, b, result float64) float64 {
	c.history = append(c.history, fmt.Sprintf("%s %s %s = %s",
		formatNumber(a), op, formatNumber(b), formatNumber(result)))
	return result
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
