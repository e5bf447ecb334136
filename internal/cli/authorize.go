package cli

import (
	"context"
	"fmt"
)

// runAuthorize prints the quick-login grant an external application
// receives: the active account's username and nickname. Nothing else
// leaves the store.
func (c *Cli) runAuthorize(ctx context.Context) error {
	active, err := c.manager.Current(ctx, "")
	if err != nil {
		return err
	}
	if active == nil {
		return fmt.Errorf("login required before authorizing an external app")
	}

	fmt.Fprintln(c.out, "=== Quick-Login Grant ===")
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Username: %s\n", active.Username)
	fmt.Fprintf(c.out, "Nickname: %s\n", active.Nickname)

	return nil
}
