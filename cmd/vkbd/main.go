package main

import "github.com/OpenTraceLab/vkeyboard/cmd/vkbd/cmd"

func main() {
	cmd.Execute()
}
