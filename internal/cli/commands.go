package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/passadmin/passadmin-go/internal/crypto"
)

// GenerateConfig holds the parsed generate flags.
type GenerateConfig struct {
	Length     int
	Separators bool
	Copy       bool
	Count      int
}

// ParseGenerateFlags parses generate flags from args using fs, so tests can
// call it without touching the global flag set.
func (a *App) ParseGenerateFlags(fs *flag.FlagSet, args []string) (GenerateConfig, error) {
	cfg := GenerateConfig{}
	fs.IntVar(&cfg.Length, "length", a.DefaultLength, "password length, separators excluded")
	fs.IntVar(&cfg.Length, "l", a.DefaultLength, "password length (shorthand)")
	fs.BoolVar(&cfg.Separators, "separators", a.DefaultSeparators, "insert a hyphen every 4 characters")
	fs.BoolVar(&cfg.Copy, "copy", false, "copy the last password to the clipboard")
	fs.IntVar(&cfg.Count, "count", 1, "number of passwords to generate")
	err := fs.Parse(args)
	return cfg, err
}

// CmdGenerate prints one or more passwords.
func (a *App) CmdGenerate(args []string) error {
	cfg, err := a.ParseGenerateFlags(flag.NewFlagSet("generate", flag.ContinueOnError), args)
	if err != nil {
		return err
	}
	if cfg.Count < 1 {
		cfg.Count = 1
	}
	if cfg.Count > MaxCount {
		return ErrCountTooLarge
	}
	if err := a.checkLength(cfg.Length); err != nil {
		return err
	}

	var last string
	for i := 0; i < cfg.Count; i++ {
		pwd, err := a.Generator.Generate(cfg.Length, cfg.Separators)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.Out, pwd)
		last = pwd
	}

	if cfg.Copy {
		a.copy(last)
	}
	return nil
}

// CmdCheck scores a password given as the only argument, or prompts for it.
// With -strict it fails unless every criterion is met.
func (a *App) CmdCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	strict := fs.Bool("strict", false, "exit non-zero unless the score is maximal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var pwd string
	switch fs.NArg() {
	case 0:
		var err error
		if pwd, err = a.promptSecret("Enter your password: "); err != nil {
			return err
		}
	case 1:
		pwd = fs.Arg(0)
	default:
		return fmt.Errorf("check takes at most one password, got %d", fs.NArg())
	}

	report := crypto.Score(pwd)
	a.printReport(report)

	if *strict && !report.Passed() {
		return ErrWeakPassword
	}
	return nil
}

// CmdToken prints a signed API token.
func CmdToken(args []string, secret string, expiry time.Duration, w io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("subject", "passadmin-cli", "API client name")
	ttl := fs.Duration("expiry", expiry, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := crypto.GenerateToken(*subject, secret, *ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, token)
	return nil
}
