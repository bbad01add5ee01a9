// Package main is the entry point for the vendors CLI.
package main

import "github.com/mesh-intelligence/vendors/internal/cli"

func main() {
	cli.Execute()
}
