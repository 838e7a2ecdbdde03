package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" default:"rockpaper.hcl" help:"Path to HCL configuration file"`
	NoColor bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play against the computer (default)"`
	Verify  VerifyCmd        `cmd:"" help:"Check a revealed key and move index against a published HMAC"`
	Rules   RulesCmd         `cmd:"" help:"Print who beats whom for a list of moves"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rockpaper"),
		kong.Description("Provably fair rock-paper-scissors with any odd number of moves"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
