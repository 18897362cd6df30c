package main

import "sitetidy/cmd"

func main() {
	cmd.Execute()
}
