package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blimu-dev/devops-sdk/pkg/api"
)

// RunWhoami prints the identity the server sees for the configured credentials
func RunWhoami(ctx context.Context, g *Globals) error {
	conn, err := g.Connect()
	if err != nil {
		return err
	}
	data, err := conn.ConnectionData(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection data: %w", err)
	}
	if data == nil || data.AuthenticatedUser == nil {
		return errors.New("server returned no authenticated user")
	}
	if g.JSON {
		enc := json.NewEncoder(g.out())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	t := newTable(g.out(), "FIELD", "VALUE")
	t.row("user", displayName(data.AuthenticatedUser))
	t.row("id", data.AuthenticatedUser.ID.String())
	if data.AuthorizedUser != nil && data.AuthorizedUser.ID != data.AuthenticatedUser.ID {
		t.row("authorizedAs", displayName(data.AuthorizedUser))
	}
	t.row("server", conn.ServerURL)
	t.row("deployment", orDash(data.DeploymentType))
	t.row("instance", data.InstanceID.String())
	return t.flush()
}

func displayName(id *api.Identity) string {
	if id.CustomDisplayName != "" {
		return id.CustomDisplayName
	}
	return orDash(id.ProviderDisplayName)
}
