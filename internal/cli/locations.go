package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/blimu-dev/devops-sdk/pkg/build"
	"github.com/blimu-dev/devops-sdk/pkg/test"
	"github.com/blimu-dev/devops-sdk/pkg/vsoclient"
)

// resourceAreaIDs maps the areas this module has clients for to their ids, so
// their locations are read from the host that serves them
var resourceAreaIDs = map[string]string{
	strings.ToLower(build.Area): build.ResourceAreaID,
	strings.ToLower(test.Area):  test.ResourceAreaID,
}

// RunLocations prints the resource locations the server advertises for area
func RunLocations(ctx context.Context, g *Globals, area string) error {
	conn, err := g.Connect()
	if err != nil {
		return err
	}
	base, err := conn.NewBase(ctx, resourceAreaIDs[strings.ToLower(area)], "")
	if err != nil {
		return err
	}
	byID, err := base.Vso.AreaLocations(ctx, area)
	if err != nil {
		return fmt.Errorf("failed to get locations of area %s: %w", area, err)
	}
	if len(byID) == 0 {
		return fmt.Errorf("server advertises no locations for area %s", area)
	}

	locations := make([]vsoclient.ResourceLocation, 0, len(byID))
	for _, l := range byID {
		locations = append(locations, l)
	}
	sort.Slice(locations, func(i, j int) bool {
		if locations[i].ResourceName != locations[j].ResourceName {
			return locations[i].ResourceName < locations[j].ResourceName
		}
		return locations[i].ID.String() < locations[j].ID.String()
	})

	if g.JSON {
		enc := json.NewEncoder(g.out())
		enc.SetIndent("", "  ")
		return enc.Encode(locations)
	}
	t := newTable(g.out(), "ID", "RESOURCE", "VERSIONS", "REVISION", "ROUTE")
	for _, l := range locations {
		versions := l.MinVersion + "-" + l.MaxVersion
		if l.ReleasedVersion != "" && l.ReleasedVersion != "0.0" {
			versions += " (released " + l.ReleasedVersion + ")"
		}
		t.row(l.ID.String(), l.ResourceName, versions, strconv.Itoa(l.ResourceVersion), l.RouteTemplate)
	}
	return t.flush()
}
