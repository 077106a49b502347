package main

import "helium/cmd"

func main() {
	cmd.Execute()
}
