package main

import "github.com/KaramelBytes/domainlens-cli/cmd"

func main() {
	cmd.Execute()
}
