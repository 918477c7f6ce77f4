package main

import "github.com/vertexnova/vnetemplate/cmd/vnetemplate/cmd"

func main() {
	cmd.Execute()
}
