package main

import "github.com/cadmiumcmyk/curator/cmd"

func main() {
	cmd.Execute()
}
