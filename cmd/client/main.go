package main

import "cobros/cmd/client/cmd"

func main() {
	cmd.Execute()
}
