// Package main is the entry point for the dynstack application.
package main

import (
	"github.com/dynstack-cli/dynstack/cmd"
	"github.com/dynstack-cli/dynstack/config"
	"github.com/dynstack-cli/dynstack/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
