package main

import "github.com/ssargent/gobpt/cmd/gobpt/cmd"

func main() {
	cmd.Execute()
}
