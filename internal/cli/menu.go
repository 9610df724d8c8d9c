package cli

import (
	"fmt"
	"strings"

	"github.com/passadmin/passadmin-go/internal/crypto"
)

// RunMenu runs the interactive menu once: check a password or generate one.
// Input mistakes are reported to the user; read and generator failures are returned.
func (a *App) RunMenu() error {
	fmt.Fprintln(a.Out, "Welcome to the Password Generator tool!")
	fmt.Fprintln(a.Out, "Options:")
	fmt.Fprintln(a.Out, "1. Check Current Password Strength.")
	fmt.Fprintln(a.Out, "2. Generate a Unique Strong Password.")

	choice, err := a.prompt("Choose 1 or 2: ")
	if err != nil {
		return err
	}

	switch strings.TrimSpace(choice) {
	case "1":
		return a.menuCheck()
	case "2":
		return a.menuGenerate()
	default:
		fmt.Fprintln(a.Out, "Invalid option. Restart and choose 1 or 2.")
		return nil
	}
}

func (a *App) menuCheck() error {
	pwd, err := a.promptSecret("Enter your password: ")
	if err != nil {
		return err
	}
	a.printReport(crypto.Score(pwd))
	return nil
}

func (a *App) menuGenerate() error {
	line, err := a.prompt(fmt.Sprintf("Enter desired password length (minimum %d): ", crypto.MinLength))
	if err != nil {
		return err
	}
	length, err := parseLength(line)
	if err != nil {
		fmt.Fprintln(a.Out, "Invalid number. Exiting.")
		return nil
	}
	if err := a.checkLength(length); err != nil {
		return err
	}

	answer, err := a.prompt("Insert hyphens every 4 chars for readability? (Y/N): ")
	if err != nil {
		return err
	}

	pwd, err := a.Generator.Generate(length, parseYesNo(answer))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "\nGenerated password:\n%s\n", pwd)

	answer, err = a.prompt("Copy to clipboard? (Y/N): ")
	if err != nil {
		return err
	}
	if parseYesNo(answer) {
		a.copy(pwd)
	} else {
		fmt.Fprintln(a.Out, "Not copied.")
	}
	return nil
}
