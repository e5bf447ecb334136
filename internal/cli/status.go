package cli

import "context"

func (c *Cli) runStatus(ctx context.Context, args []string) error {
	// An explicit username argument overrides the persisted pointer
	// for this one lookup.
	var override string
	if len(args) > 0 {
		override = args[0]
	}

	active, err := c.manager.Current(ctx, override)
	if err != nil {
		return err
	}

	return c.render(statusTemplate, active)
}
