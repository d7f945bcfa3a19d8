package main

import "wireframe/internal/cli"

func main() {
	cli.Execute()
}
