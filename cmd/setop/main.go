package main

import "github.com/aalvaropc/setop/internal/cli"

func main() {
	cli.Execute()
}
