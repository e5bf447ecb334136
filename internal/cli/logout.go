package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.manager.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Logged out.")

	return nil
}
