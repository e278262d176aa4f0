package main

import "github.com/goforce/goforce/cmd/goforce/cmd"

func main() {
	cmd.Execute()
}
