// Package api holds the pieces every area client shares: the connection that
// discovers per-area service URLs and the request plumbing generated methods call.
package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/blimu-dev/devops-sdk/pkg/rest"
	"github.com/blimu-dev/devops-sdk/pkg/serialization"
	"github.com/blimu-dev/devops-sdk/pkg/vsoclient"
)

const defaultUserAgent = "go-devops-api"

// Base is embedded by every area client
type Base struct {
	BaseURL   string
	UserAgent string
	Rest      *rest.Client
	Vso       *vsoclient.Client
	Logger    *slog.Logger
}

// NewBase creates the shared client state for one area rooted at baseURL
func NewBase(baseURL, userAgent string, handlers []rest.Handler, opts rest.Options) (*Base, error) {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	opts.UserAgent = userAgent

	restClient, err := rest.New(opts, handlers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create rest client: %w", err)
	}
	vso, err := vsoclient.New(baseURL, restClient)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	vso.SetLogger(logger)

	return &Base{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		Rest:      restClient,
		Vso:       vso,
		Logger:    logger,
	}, nil
}

// CreateAcceptHeader returns the Accept value carrying the negotiated api version
func (b *Base) CreateAcceptHeader(contentType, apiVersion string) string {
	return contentType + ";api-version=" + apiVersion
}

// Request describes one call of a generated method
type Request struct {
	Method      string
	Area        string
	LocationID  string
	APIVersion  string
	RouteValues vsoclient.Values
	QueryValues vsoclient.Values
	Body        any
	// Accept is the media type expected back, application/json when empty
	Accept string
	// ContentType overrides the request body media type
	ContentType string
	Headers     map[string]string
	// Legacy sends APIVersion as is instead of negotiating it
	Legacy bool
}

// resolve turns the request into a URL and request options
func (b *Base) resolve(ctx context.Context, req *Request, defaultAccept string) (string, *rest.RequestOptions, error) {
	var (
		data *vsoclient.VersioningData
		err  error
	)
	if req.Legacy {
		data, err = b.Vso.GetLegacyVersioningData(ctx, req.APIVersion, req.Area, req.LocationID, req.RouteValues, req.QueryValues)
	} else {
		data, err = b.Vso.GetVersioningData(ctx, req.APIVersion, req.Area, req.LocationID, req.RouteValues, req.QueryValues)
	}
	if err != nil {
		return "", nil, err
	}

	accept := req.Accept
	if accept == "" {
		accept = defaultAccept
	}
	b.Logger.DebugContext(ctx, "resolved", "area", req.Area, "location", req.LocationID, "api-version", data.APIVersion)

	return data.RequestURL, &rest.RequestOptions{
		Accept:      b.CreateAcceptHeader(accept, data.APIVersion),
		ContentType: req.ContentType,
		Headers:     req.Headers,
	}, nil
}

func method(req *Request) string {
	if req.Method == "" {
		return http.MethodGet
	}
	return req.Method
}

// Do sends req and decodes the JSON response into T, coercing it with ti.
//
// A 404 yields the zero value of T and no error. isCollection unwraps the
// {count, value} envelope of list responses.
func Do[T any](ctx context.Context, b *Base, req *Request, ti *serialization.TypeInfo, isCollection bool) (T, error) {
	var zero T
	url, opts, err := b.resolve(ctx, req, "application/json")
	if err != nil {
		return zero, err
	}
	resp, err := b.Rest.Send(ctx, method(req), url, req.Body, opts)
	if err != nil {
		return zero, err
	}
	return serialization.FormatResponse[T](resp.Body, ti, isCollection)
}

// Stream sends req and returns the response body for the caller to close
func (b *Base) Stream(ctx context.Context, req *Request) (io.ReadCloser, error) {
	url, opts, err := b.resolve(ctx, req, "application/octet-stream")
	if err != nil {
		return nil, err
	}
	return b.Rest.Stream(ctx, method(req), url, req.Body, opts)
}

// Exec sends req and discards any response body
func (b *Base) Exec(ctx context.Context, req *Request) error {
	url, opts, err := b.resolve(ctx, req, "application/json")
	if err != nil {
		return err
	}
	_, err = b.Rest.Send(ctx, method(req), url, req.Body, opts)
	return err
}
