package main

import (
	"os"

	"github.com/abhisek/hoehwa/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute(), os.Stderr))
}
