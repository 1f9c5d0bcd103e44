package main

import "github.com/jsando/patterns/cmd"

func main() {
	cmd.Execute()
}
