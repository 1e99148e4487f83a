package main

import "github.com/connorsmacd/Cbb/cmd"

func main() {
	cmd.Execute()
}
