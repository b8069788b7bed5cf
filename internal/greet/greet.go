// Package greet holds the greeting shipped alongside the release tooling.
package greet

import "fmt"

const defaultName = "World"

// Greet returns the greeting for name, or for "World" when name is empty
func Greet(name string) string {
	if name == "" {
		name = defaultName
	}
	return fmt.Sprintf("Hello, %s! This package was published using GitHub App authentication.", name)
}
