package main

import "github.com/kamusis/switcher/cmd"

func main() {
	cmd.Execute()
}
