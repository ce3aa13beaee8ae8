package cli

import (
	"fmt"
	"os"
)

// ConsoleNotifier renders command notifications on the terminal, standing
// in for the toast surface of a graphical shell.
type ConsoleNotifier struct{}

func (ConsoleNotifier) Success(message string) {
	fmt.Printf("✅ %s\n", message)
}

func (ConsoleNotifier) Error(message string) {
	fmt.Fprintf(os.Stderr, "❌ %s\n", message)
}

// ConsoleNavigator renders the login redirect as an instruction, since a
// terminal has no login page to switch to.
type ConsoleNavigator struct{}

func (ConsoleNavigator) RedirectToLogin() {
	fmt.Fprintln(os.Stderr, "🔒 Not authenticated. Set CRYOGENA_TOKEN to a valid token and retry.")
}
