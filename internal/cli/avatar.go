package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runAvatar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing reference. Usage: accountbox avatar <ref>")
	}

	active, err := c.manager.Current(ctx, "")
	if err != nil {
		return err
	}
	if active == nil {
		return fmt.Errorf("not logged in. Run 'accountbox login' first")
	}

	ref := args[0]
	if err := c.manager.UpdateAvatar(ctx, active.Username, ref); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Avatar updated: %s\n", describeAvatar(ref))

	return nil
}
