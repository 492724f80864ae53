package main

import "notestash/cmd/client/cmd"

func main() {
	cmd.Execute()
}
