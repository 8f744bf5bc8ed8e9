package main

import "github.com/mouse-blink/fzindex/cmd"

func main() {
	cmd.Execute()
}
