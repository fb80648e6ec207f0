package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blimu-dev/devops-sdk/pkg/rest"
)

const (
	locationArea              = "Location"
	resourceAreasLocationID   = "e81700f7-3be2-46de-8624-2eb35882fcaa"
	resourceAreasAPIVersion   = "5.0-preview.1"
	connectionDataRelativeURL = "_apis/connectionData"
)

// ErrAreaNotFound is returned when the server does not know a resource area id
var ErrAreaNotFound = errors.New("could not find resource area")

// ResourceArea maps an area id to the host that serves it
type ResourceArea struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	LocationURL string    `json:"locationUrl"`
}

// Identity is the subset of an identity connectionData reports
type Identity struct {
	ID                  uuid.UUID `json:"id"`
	Descriptor          string    `json:"descriptor,omitempty"`
	ProviderDisplayName string    `json:"providerDisplayName,omitempty"`
	CustomDisplayName   string    `json:"customDisplayName,omitempty"`
	IsActive            bool      `json:"isActive"`
}

// ConnectionData describes the server and the caller
type ConnectionData struct {
	AuthenticatedUser *Identity `json:"authenticatedUser,omitempty"`
	AuthorizedUser    *Identity `json:"authorizedUser,omitempty"`
	InstanceID        uuid.UUID `json:"instanceId"`
	DeploymentID      uuid.UUID `json:"deploymentId"`
	DeploymentType    string    `json:"deploymentType,omitempty"`
	LastUserAccess    time.Time `json:"lastUserAccess,omitzero"`
}

// Connection is the entry point to a collection or organization
type Connection struct {
	ServerURL string
	handlers  []rest.Handler
	options   rest.Options
	base      *Base

	mu            sync.Mutex
	resourceAreas []ResourceArea
	areasLoaded   bool
}

// NewConnection creates a connection to serverURL authenticated by handlers
func NewConnection(serverURL string, handlers []rest.Handler, opts rest.Options) (*Connection, error) {
	base, err := NewBase(serverURL, opts.UserAgent, handlers, opts)
	if err != nil {
		return nil, err
	}
	return &Connection{
		ServerURL: serverURL,
		handlers:  handlers,
		options:   opts,
		base:      base,
	}, nil
}

// Logger returns the logger requests are traced to
func (c *Connection) Logger() *slog.Logger {
	return c.base.Logger
}

// NewBase creates area client state for areaID with userAgent.
// The area's own host is discovered through ResourceAreaURL.
func (c *Connection) NewBase(ctx context.Context, areaID, userAgent string) (*Base, error) {
	baseURL, err := c.ResourceAreaURL(ctx, areaID)
	if err != nil {
		return nil, err
	}
	return NewBase(baseURL, userAgent, c.handlers, c.options)
}

// ResourceAreas lists the areas the server routes to other hosts.
// The list is fetched once; failures are retried on the next call.
func (c *Connection) ResourceAreas(ctx context.Context) ([]ResourceArea, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.areasLoaded {
		return c.resourceAreas, nil
	}

	areas, err := Do[[]ResourceArea](ctx, c.base, &Request{
		Area:       locationArea,
		LocationID: resourceAreasLocationID,
		APIVersion: resourceAreasAPIVersion,
	}, nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve resource areas from server %s: %w", c.ServerURL, err)
	}
	c.resourceAreas = areas
	c.areasLoaded = true
	return areas, nil
}

// ResourceAreaURL returns the URL serving areaID. On-premises servers report no
// areas and serve everything themselves.
func (c *Connection) ResourceAreaURL(ctx context.Context, areaID string) (string, error) {
	if areaID == "" {
		return c.ServerURL, nil
	}
	areas, err := c.ResourceAreas(ctx)
	if err != nil {
		return "", err
	}
	if len(areas) == 0 {
		return c.ServerURL, nil
	}
	for _, area := range areas {
		if strings.EqualFold(area.ID.String(), areaID) {
			return area.LocationURL, nil
		}
	}
	return "", fmt.Errorf("%w %s from server %s", ErrAreaNotFound, areaID, c.ServerURL)
}

// ConnectionData reports who the server thinks the caller is
func (c *Connection) ConnectionData(ctx context.Context) (*ConnectionData, error) {
	resp, err := c.base.Rest.Get(ctx, c.base.Vso.ResolveURL(connectionDataRelativeURL), nil)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return nil, nil
	}
	var data ConnectionData
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode connection data: %w", err)
	}
	return &data, nil
}
