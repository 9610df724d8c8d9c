// Package cli implements passadmin's interactive menu and subcommands.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/passadmin/passadmin-go/internal/crypto"
	"github.com/passadmin/passadmin-go/internal/service"
)

const (
	// maxInputLine bounds a single line of piped input.
	maxInputLine = 1 << 20 // 1MB

	MaxCount = 1000
)

var (
	ErrWeakPassword  = errors.New("password does not meet every strength criterion")
	ErrCountTooLarge = fmt.Errorf("count must be at most %d", MaxCount)
)

// Clipboard receives generated passwords.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard not supported on this system")
	}
	return clipboard.WriteAll(text)
}

// App holds the I/O and collaborators shared by every command.
type App struct {
	Out       io.Writer
	Generator *crypto.Generator
	Clipboard Clipboard

	// ReadSecret reads a password without echo. When nil, passwords are read
	// as plain input lines.
	ReadSecret func(prompt string, w io.Writer) (string, error)

	DefaultLength     int
	DefaultSeparators bool
	// MaxLength caps generated password length; 0 disables the cap.
	MaxLength int

	in *bufio.Scanner
}

// NewApp returns an App reading from in and writing to out.
func NewApp(in io.Reader, out io.Writer, gen *crypto.Generator, clip Clipboard) *App {
	opts := service.DefaultGeneratorOptions()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputLine)

	return &App{
		Out:               out,
		Generator:         gen,
		Clipboard:         clip,
		DefaultLength:     opts.DefaultLength,
		DefaultSeparators: opts.DefaultSeparators,
		MaxLength:         opts.MaxLength,
		in:                scanner,
	}
}

// LoadEnv loads .env files into the environment. A missing file is ignored;
// any other failure is reported on w.
func LoadEnv(w io.Writer, filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(w, "passadmin: warning: load env: %v\n", err)
	}
}

// ReadPassword prompts on w and reads a line from the terminal without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// StdinIsTerminal reports whether standard input is an interactive terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// prompt returns the next input line. End of input yields an empty line.
func (a *App) prompt(msg string) (string, error) {
	fmt.Fprint(a.Out, msg)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", nil
	}
	return a.in.Text(), nil
}

func (a *App) promptSecret(msg string) (string, error) {
	if a.ReadSecret != nil {
		return a.ReadSecret(msg, a.Out)
	}
	return a.prompt(msg)
}

func (a *App) checkLength(length int) error {
	if a.MaxLength > 0 && length > a.MaxLength {
		return fmt.Errorf("%w (%d)", service.ErrLengthTooLong, a.MaxLength)
	}
	return nil
}

// copy writes password to the clipboard. Failures are reported, not returned.
func (a *App) copy(password string) {
	if a.Clipboard == nil {
		fmt.Fprintln(a.Out, "Clipboard unavailable, not copied.")
		return
	}
	if err := a.Clipboard.WriteAll(password); err != nil {
		fmt.Fprintf(a.Out, "Could not copy to clipboard: %v\n", err)
		return
	}
	fmt.Fprintln(a.Out, "Password copied to clipboard!")
}

func (a *App) printReport(report crypto.StrengthReport) {
	fmt.Fprintf(a.Out, "Password Strength: %d/%d\n", report.Score, crypto.MaxScore)
	for _, issue := range report.Failed() {
		fmt.Fprintf(a.Out, "- %s\n", issue)
	}
}

// parseYesNo returns true for "y" / "yes" (case-insensitive), false otherwise.
func parseYesNo(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "y" || s == "yes"
}

func parseLength(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
