package main

import "github.com/zostay/go-lifo/cmd/gmail/cmd"

func main() {
	cmd.Execute()
}
