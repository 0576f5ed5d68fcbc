package main

import (
	"github.com/hhkbp2/kvbench"
	"github.com/hhkbp2/kvbench/binding"
)

func main() {
	binding.AddBindings()
	kvbench.Main()
}
