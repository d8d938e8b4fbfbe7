//go:build !tinygo

package main

import "inkclock/internal/cli"

func main() {
	cli.Execute()
}
