package main

import "github.com/tiffanybuu/cs466-project/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
