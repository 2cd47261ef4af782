package main

import "github.com/alde/aspectratio/cmd"

func main() {
	cmd.Execute()
}
