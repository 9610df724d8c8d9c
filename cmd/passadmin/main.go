package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/passadmin/passadmin-go/internal/cli"
	"github.com/passadmin/passadmin-go/internal/config"
	"github.com/passadmin/passadmin-go/internal/crypto"
)

const usage = `usage: passadmin [command]

commands:
  (none)     interactive menu
  generate   print a password (-length or -l, -separators, -copy, -count)
  check      score a password (-strict)
  token      print an API token (-subject, -expiry)
`

func main() {
	cli.LoadEnv(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	src, err := crypto.NewSource(cfg.RandomSource, cfg.RandomSeed)
	if err != nil {
		fatal(err)
	}

	app := cli.NewApp(os.Stdin, os.Stdout, crypto.NewGenerator(src), cli.SystemClipboard{})
	app.DefaultLength = cfg.DefaultLength
	app.DefaultSeparators = cfg.DefaultSeparators
	app.MaxLength = cfg.MaxLength
	if cli.StdinIsTerminal() {
		app.ReadSecret = cli.ReadPassword
	}

	if len(os.Args) < 2 {
		err = app.RunMenu()
	} else {
		args := os.Args[2:]
		switch os.Args[1] {
		case "generate":
			err = app.CmdGenerate(args)
		case "check":
			err = app.CmdCheck(args)
		case "token":
			err = cli.CmdToken(args, cfg.JWTSecret, cfg.JWTExpiry, os.Stdout)
		case "help", "-h", "--help":
			fmt.Print(usage)
		default:
			fmt.Fprintf(os.Stderr, "passadmin: unknown command %q\n\n%s", os.Args[1], usage)
			os.Exit(2)
		}
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "passadmin: %v\n", err)
	os.Exit(1)
}
