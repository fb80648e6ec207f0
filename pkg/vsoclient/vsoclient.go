// Package vsoclient resolves resource locations into versioned request URLs.
//
// Every service area advertises its resources with an OPTIONS request on
// {collection}/_apis/{area}. Each resource location carries a route template and
// the range of API versions it serves. Client caches those per area and turns a
// (area, location id, requested version, route values, query values) tuple into
// the URL to call and the version to send in the Accept header.
package vsoclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mohae/deepcopy"
	"golang.org/x/sync/singleflight"

	"github.com/blimu-dev/devops-sdk/pkg/rest"
)

const apisRelativePath = "_apis"

// ErrLocationNotFound is returned when an area does not advertise a location id
var ErrLocationNotFound = errors.New("failed to find api location")

// ResourceLocation is a server-advertised resource descriptor
type ResourceLocation struct {
	ID              uuid.UUID `json:"id"`
	Area            string    `json:"area"`
	ResourceName    string    `json:"resourceName"`
	RouteTemplate   string    `json:"routeTemplate"`
	ResourceVersion int       `json:"resourceVersion"`
	MinVersion      string    `json:"minVersion"`
	MaxVersion      string    `json:"maxVersion"`
	ReleasedVersion string    `json:"releasedVersion"`
}

// VersioningData is the outcome of resolving a request
type VersioningData struct {
	APIVersion string
	RequestURL string
}

// Transport is the part of the REST client the resolver needs
type Transport interface {
	Options(ctx context.Context, url string, opts *rest.RequestOptions) (*rest.Response, error)
}

// Client resolves locations relative to a collection URL
type Client struct {
	baseURL  string
	origin   string
	basePath string
	rest     Transport
	logger   *slog.Logger

	mu    sync.Mutex
	areas map[string]map[string]*ResourceLocation
	group singleflight.Group
}

// New creates a resolver for the collection at baseURL
func New(baseURL string, transport Transport) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}
	return &Client{
		baseURL:  baseURL,
		origin:   u.Scheme + "://" + u.Host,
		basePath: u.EscapedPath(),
		rest:     transport,
		logger:   slog.Default(),
		areas:    make(map[string]map[string]*ResourceLocation),
	}, nil
}

// SetLogger replaces the logger used for location lookups
func (c *Client) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// BaseURL returns the collection URL the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetVersioningData resolves a request against the area's locations, negotiating
// apiVersion with what the location supports.
func (c *Client) GetVersioningData(ctx context.Context, apiVersion, area, locationID string, routeValues, queryValues Values) (*VersioningData, error) {
	location, err := c.Location(ctx, area, locationID)
	if err != nil {
		return nil, err
	}
	return &VersioningData{
		APIVersion: NegotiateAPIVersion(location, apiVersion),
		RequestURL: c.RequestURL(location.RouteTemplate, location.Area, location.ResourceName, routeValues, queryValues),
	}, nil
}

// GetLegacyVersioningData resolves the URL like GetVersioningData but sends
// apiVersion as requested. Older on-premises servers advertise version ranges that
// do not follow the preview convention, so negotiation would downgrade requests
// they can serve. An empty apiVersion falls back to the released version.
func (c *Client) GetLegacyVersioningData(ctx context.Context, apiVersion, area, locationID string, routeValues, queryValues Values) (*VersioningData, error) {
	location, err := c.Location(ctx, area, locationID)
	if err != nil {
		return nil, err
	}
	if apiVersion == "" {
		apiVersion = location.ReleasedVersion
	}
	return &VersioningData{
		APIVersion: apiVersion,
		RequestURL: c.RequestURL(location.RouteTemplate, location.Area, location.ResourceName, routeValues, queryValues),
	}, nil
}

// Location returns the location with id locationID in area
func (c *Client) Location(ctx context.Context, area, locationID string) (*ResourceLocation, error) {
	locations, err := c.areaLocations(ctx, area)
	if err != nil {
		return nil, err
	}
	location, ok := locations[strings.ToLower(locationID)]
	if !ok {
		return nil, fmt.Errorf("%w for area: %s id: %s", ErrLocationNotFound, area, locationID)
	}
	return location, nil
}

// AreaLocations returns a copy of the locations advertised by area, keyed by lower case id
func (c *Client) AreaLocations(ctx context.Context, area string) (map[string]ResourceLocation, error) {
	locations, err := c.areaLocations(ctx, area)
	if err != nil {
		return nil, err
	}
	out := make(map[string]ResourceLocation, len(locations))
	for id, l := range locations {
		out[id] = *l
	}
	return out, nil
}

// SetLocations primes the cache for area, skipping the OPTIONS round trip
func (c *Client) SetLocations(area string, locations []ResourceLocation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.areas[strings.ToLower(area)] = indexLocations(locations)
}

// areaLocations fetches the area's locations once. Concurrent callers share the
// request. Failures and empty responses are not cached.
func (c *Client) areaLocations(ctx context.Context, area string) (map[string]*ResourceLocation, error) {
	key := strings.ToLower(area)

	c.mu.Lock()
	locations, ok := c.areas[key]
	c.mu.Unlock()
	if ok {
		return locations, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.Lock()
		cached, ok := c.areas[key]
		c.mu.Unlock()
		if ok {
			return cached, nil
		}

		requestURL := c.ResolveURL(apisRelativePath + "/" + area)
		resp, err := c.rest.Options(ctx, requestURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get locations for area %s: %w", area, err)
		}
		if resp == nil || len(resp.Body) == 0 {
			return map[string]*ResourceLocation{}, nil
		}
		var payload struct {
			Count int                `json:"count"`
			Value []ResourceLocation `json:"value"`
		}
		if err := json.Unmarshal(resp.Body, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode locations for area %s: %w", area, err)
		}
		index := indexLocations(payload.Value)
		c.logger.DebugContext(ctx, "resource locations", "area", area, "count", len(index))

		c.mu.Lock()
		c.areas[key] = index
		c.mu.Unlock()
		return index, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]*ResourceLocation), nil
}

func indexLocations(locations []ResourceLocation) map[string]*ResourceLocation {
	index := make(map[string]*ResourceLocation, len(locations))
	for i := range locations {
		l := locations[i]
		index[strings.ToLower(l.ID.String())] = &l
	}
	return index
}

// RequestURL builds the absolute URL for a route template. The area and resource
// route values default to the location's own when the caller did not set them.
// routeValues is not modified.
func (c *Client) RequestURL(routeTemplate, area, resource string, routeValues, queryValues Values) string {
	values := Values{}
	if routeValues != nil {
		values = deepcopy.Copy(routeValues).(Values)
	}
	if !truthy(values["area"]) {
		values["area"] = area
	}
	if !truthy(values["resource"]) {
		values["resource"] = resource
	}

	relativeURL := ReplaceRouteValues(routeTemplate, values)
	if queryValues != nil {
		relativeURL += QueryString(queryValues)
	}
	return c.ResolveURL(relativeURL)
}

// ResolveURL joins a relative URL (which may carry a query string) under the
// collection path.
func (c *Client) ResolveURL(relativeURL string) string {
	relPath, query, hasQuery := strings.Cut(relativeURL, "?")
	joined := path.Join("/", c.basePath, relPath)
	if hasQuery {
		return c.origin + joined + "?" + query
	}
	return c.origin + joined
}
