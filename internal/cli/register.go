package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Fprintln(c.out, "=== Registration ===")
	fmt.Fprintln(c.out)

	username, err := c.readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirmPassword, err := c.readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	nickname, err := c.readInput("Nickname (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read nickname: %w", err)
	}

	account, err := c.manager.Register(ctx, username, password, nickname)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Account created.")
	fmt.Fprintf(c.out, "Username: %s\n", account.Username)
	fmt.Fprintf(c.out, "Nickname: %s\n", account.Nickname)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Run 'accountbox login' to activate it.")

	return nil
}
