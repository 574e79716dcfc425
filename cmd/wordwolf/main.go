package main

import "github.com/mcoot/wordwolf/internal/cli"

func main() {
	cli.Execute()
}
