package main

import "github.com/gnames/txlist/cmd"

func main() {
	cmd.Execute()
}
