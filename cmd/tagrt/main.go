package main

import (
	"go.brendoncarroll.net/star"

	"myceliumweb.org/tagrt/tagcmd"
)

func main() {
	star.Main(tagcmd.Root())
}
