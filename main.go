package main

import "github.com/golangdaddy/circuit/cmd"

func main() {
	cmd.Execute()
}
