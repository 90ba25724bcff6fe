package main

import "lynx-bridge/cmd"

func main() {
	cmd.Execute()
}
