package main

import "audioshelf/cmd/audioshelf-cli/cmd"

func main() {
	cmd.Execute()
}
