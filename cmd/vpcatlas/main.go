package main

import "github.com/atlasops/vpcatlas/cmd/vpcatlas/commands"

func main() {
	commands.Execute()
}
