package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/accountbox/internal/avatar"
)

type profileView struct {
	Username  string
	Nickname  string
	AvatarRef string
	Signature string
}

func (c *Cli) runProfile(ctx context.Context) error {
	active, err := c.manager.Current(ctx, "")
	if err != nil {
		return err
	}
	if active == nil {
		return fmt.Errorf("not logged in. Run 'accountbox login' first")
	}

	signature, err := c.settings.GetSignature(ctx)
	if err != nil {
		return fmt.Errorf("failed to read signature: %w", err)
	}

	return c.render(profileTemplate, profileView{
		Username:  active.Username,
		Nickname:  active.Nickname,
		AvatarRef: active.AvatarRef,
		Signature: signature,
	})
}

// describeAvatar turns an avatar reference into a printable summary.
// Unresolvable references degrade to the default placeholder text.
func describeAvatar(ref string) string {
	resolved := avatar.Resolve(ref)
	switch resolved.Kind {
	case avatar.KindResource:
		return fmt.Sprintf("builtin avatar #%d", resolved.ResourceID)
	case avatar.KindExternal:
		return resolved.URI
	default:
		return "default avatar"
	}
}
