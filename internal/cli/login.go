package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	}

	if username == "" {
		// Pre-fill with the last successfully active username.
		remembered, err := c.manager.Remembered(ctx)
		if err != nil {
			return fmt.Errorf("failed to read remembered username: %w", err)
		}

		prompt := "Username: "
		if remembered != "" {
			prompt = fmt.Sprintf("Username [%s]: ", remembered)
		}

		input, err := c.readInput(prompt)
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
		if input == "" {
			input = remembered
		}
		if input == "" {
			return fmt.Errorf("username is required")
		}
		username = input
	}

	password, err := c.readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	active, err := c.manager.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Logged in as %s (%s)\n", active.Nickname, active.Username)

	return nil
}

func (c *Cli) runSwitch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing username. Usage: accountbox switch <username>")
	}

	active, err := c.manager.SwitchTo(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Switched to %s (%s)\n", active.Nickname, active.Username)

	return nil
}
