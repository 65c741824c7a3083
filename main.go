package main

import "github.com/gaurav-prasanna/docpipe/cmd"

func main() {
	cmd.Execute()
}
