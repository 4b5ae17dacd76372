// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package arith provides small integer helpers used by the example programs.
package arith

// calculateOffset is added to every product returned by Calculate.
const calculateOffset = 10

// Calculate returns a*b + 10.
// Results wrap on int32 overflow.
func Calculate(a, b int32) int32 {
	return a*b + calculateOffset
}

// IsEven reports whether n is divisible by 2.
func IsEven(n int32) bool {
	return n%2 == 0
}
