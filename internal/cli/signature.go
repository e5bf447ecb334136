package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runSignature(ctx context.Context, args []string) error {
	if len(args) == 0 {
		signature, err := c.settings.GetSignature(ctx)
		if err != nil {
			return fmt.Errorf("failed to read signature: %w", err)
		}
		fmt.Fprintln(c.out, signature)
		return nil
	}

	signature := strings.Join(args, " ")
	if err := c.settings.SetSignature(ctx, signature); err != nil {
		return fmt.Errorf("failed to save signature: %w", err)
	}

	fmt.Fprintln(c.out, "Signature updated.")

	return nil
}
