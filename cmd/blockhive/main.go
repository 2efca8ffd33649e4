package main

import "github.com/mcoot/blockhive/internal/cli"

func main() {
	cli.Execute()
}
