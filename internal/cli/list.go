package cli

import "context"

func (c *Cli) runAccounts(ctx context.Context) error {
	// The active account is excluded from the switch list. When logged
	// out every stored account is listed.
	var exclude string

	active, err := c.manager.Current(ctx, "")
	if err != nil {
		return err
	}
	if active != nil {
		exclude = active.Username
	}

	accounts, err := c.queries.ListOtherAccounts(ctx, exclude)
	if err != nil {
		return err
	}

	return c.render(accountsListTemplate, accounts)
}
