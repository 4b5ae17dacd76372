// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package hello builds greeting messages.
package hello

// DefaultName is the name used when no one in particular is being greeted.
const DefaultName = "World"

// Greet returns a greeting message for name.
// The name is used verbatim, so an empty name yields "Hello, !".
func Greet(name string) string {
	return "Hello, " + name + "!"
}

// HelloWorld returns the greeting for DefaultName.
func HelloWorld() string {
	return Greet(DefaultName)
}
