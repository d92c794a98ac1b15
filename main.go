package main

import "github.com/dotcommander/assay/cmd"

func main() {
	cmd.Execute()
}
