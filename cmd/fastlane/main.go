package main

import "github.com/mcoot/fastlane/internal/cli"

func main() {
	cli.Execute()
}
