package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runEdit(ctx context.Context) error {
	active, err := c.manager.Current(ctx, "")
	if err != nil {
		return err
	}
	if active == nil {
		return fmt.Errorf("not logged in. Run 'accountbox login' first")
	}

	fmt.Fprintf(c.out, "=== Edit Profile (%s) ===\n", active.Username)
	fmt.Fprintln(c.out)

	newNickname, err := c.readInput(fmt.Sprintf("New nickname [%s]: ", active.Nickname))
	if err != nil {
		return fmt.Errorf("failed to read nickname: %w", err)
	}

	newPassword, err := c.readPassword("New password (leave blank to keep): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	result, err := c.manager.EditProfile(ctx, active.Username, newNickname, newPassword)
	if err != nil {
		return err
	}

	if !result.NicknameUpdated && !result.PasswordUpdated {
		fmt.Fprintln(c.out, "Nothing to change.")
		return nil
	}

	if result.NicknameUpdated {
		fmt.Fprintln(c.out, "Nickname updated.")
	}

	// Forcing re-authentication after a password change is this
	// surface's policy; the manager only reports the hint.
	if result.ReauthRequired {
		if err := c.manager.Logout(ctx); err != nil {
			return fmt.Errorf("failed to log out after password change: %w", err)
		}
		fmt.Fprintln(c.out, "Password changed. Please log in again.")
	}

	return nil
}
