package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" help:"Practice flop spots interactively"`
	Drill   DrillCmd         `cmd:"" help:"Print a drill worksheet"`
	Serve   ServeCmd         `cmd:"" help:"Run the practice server"`
	Analyze AnalyzeCmd       `cmd:"" help:"Explain a single flop spot"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-trainer"),
		kong.Description("Flop trainer for hand reading, outs counting and pot odds"),
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
