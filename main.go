package main

import "github.com/papapumpkin/sprout/cmd"

func main() {
	cmd.Execute()
}
