package main

import (
	"github.com/exoumoon/invar/cmd"
	"github.com/exoumoon/invar/config"
)

// Version is injected at build time via -ldflags.
var Version string

func main() {
	config.SetVersion(Version)
	cmd.Execute()
}
