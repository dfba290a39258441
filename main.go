// Package main provides the entry point for the emso-scan CLI application.
package main

import (
	"fmt"
	"os"

	"jzorko/emso-scan/cmd/root"
	"jzorko/emso-scan/cmd/scan"
	"jzorko/emso-scan/cmd/validate"
)

func init() {
	root.Cmd.AddCommand(scan.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
