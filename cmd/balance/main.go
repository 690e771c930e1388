package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-lifo/cmd/balance/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
