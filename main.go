package main

import "github.com/ooyeku/tabreader/cmd"

func main() {
	cmd.Execute()
}
