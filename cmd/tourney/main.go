package main

import "github.com/mcoot/tourneyview/internal/cli"

func main() {
	cli.Execute()
}
