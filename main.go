package main

import "termctl/internal/cli"

func main() {
	cli.Execute()
}
