package main

import (
	"github.com/jellytv/jellytv/cmd"
	"github.com/jellytv/jellytv/config"
	"github.com/jellytv/jellytv/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	defer func() { _ = log.Close() }()

	cmd.Execute()
}
