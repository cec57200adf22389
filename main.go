package main

import "fixturegen/cmd"

func main() {
	cmd.Execute()
}
