package main

import "econ-cdn/cmd"

func main() {
	cmd.Execute()
}
