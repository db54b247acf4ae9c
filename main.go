package main

import "get-badapple/cmd"

func main() {
	cmd.Execute()
}
