package main

import "github.com/zakariaejaidi/classfy/cmd"

func main() {
	cmd.Execute()
}
