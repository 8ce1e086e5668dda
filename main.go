package main

import "github.com/philipparndt/gouvtile/internal/cmd"

func main() {
	cmd.Parse()
}
