package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"syscall"
	"text/template"

	"golang.org/x/term"

	"github.com/iudanet/accountbox/internal/query"
	"github.com/iudanet/accountbox/internal/session"
	"github.com/iudanet/accountbox/internal/storage"
)

// Cli dispatches commands against the session manager and the read
// facade. Input and output streams are injected so commands stay
// testable.
type Cli struct {
	manager  *session.Manager
	queries  *query.Service
	settings storage.SettingsStorage
	in       *bufio.Reader
	out      io.Writer
}

// New creates the command dispatcher.
func New(manager *session.Manager, queries *query.Service, settings storage.SettingsStorage, in io.Reader, out io.Writer) *Cli {
	return &Cli{
		manager:  manager,
		queries:  queries,
		settings: settings,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run executes one command. Unknown commands print usage and fail.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx, args)
	case "switch":
		return c.runSwitch(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx, args)
	case "accounts":
		return c.runAccounts(ctx)
	case "profile":
		return c.runProfile(ctx)
	case "edit":
		return c.runEdit(ctx)
	case "avatar":
		return c.runAvatar(ctx, args)
	case "signature":
		return c.runSignature(ctx, args)
	case "authorize":
		return c.runAuthorize(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage writes the command reference to the output stream.
func (c *Cli) PrintUsage() {
	fmt.Fprint(c.out, usageText)
}

// readInput reads one trimmed line from the input stream.
func (c *Cli) readInput(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	input, err := c.in.ReadString('\n')
	if err != nil && input == "" {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword reads a password without echoing when stdin is a
// terminal; otherwise it falls back to a plain line read so the CLI
// stays scriptable.
func (c *Cli) readPassword(prompt string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return c.readInput(prompt)
	}

	fmt.Fprint(c.out, prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}

// render executes a template against data and writes it to the output
// stream.
func (c *Cli) render(tmpl *template.Template, data any) error {
	if err := tmpl.Execute(c.out, data); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}
