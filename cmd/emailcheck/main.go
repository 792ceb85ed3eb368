package main

import "github.com/dmitrymomot/emailcheck/internal/cli"

func main() {
	cli.Execute()
}
