package main

import "launchsync/cmd"

func main() {
	cmd.Execute()
}
