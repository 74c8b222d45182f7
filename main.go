package main

import "github.com/kiesman99/imgsplit/cmd"

func main() {
	cmd.Execute()
}
