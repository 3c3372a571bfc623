package main

import "github.com/vtcampfinder/campdata/internal/cli"

func main() {
	cli.Execute()
}
