package main

import "github.com/mj1618/uibridge/cmd"

func main() {
	cmd.Execute()
}
