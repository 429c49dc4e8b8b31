package main

import (
	"github.com/samber/lo"
	"github.com/ytget/ytinfo/internal/config"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(config.SetupLogger())

	Execute()
}
