package main

import "gamearena/cmd"

func main() {
	cmd.Execute()
}
