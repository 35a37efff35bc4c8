package main

import "github.com/nfrund/painel/cmd/painel-cli/cmd"

func main() {
	cmd.Execute()
}
