package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play a game at the terminal"`
	Sim     SimCmd           `cmd:"" help:"Run AI-only games and report the outcomes"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate a hand of cards"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cardfelt"),
		kong.Description("Multi-variant poker at the terminal, against the house AI"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
