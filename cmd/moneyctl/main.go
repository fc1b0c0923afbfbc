package main

import "github.com/ledgerkit/money/internal/cli"

func main() {
	cli.Execute()
}
