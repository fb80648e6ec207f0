package rest

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func newTestClient(t *testing.T, opts Options, handlers ...Handler) *Client {
	t.Helper()
	c, err := New(opts, handlers...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestHandlers(t *testing.T) {
	tests := []struct {
		name    string
		handler Handler
		want    string
	}{
		{"bearer", BearerToken("tok"), "Bearer tok"},
		{"basic", Basic("user", "pass"), "Basic " + base64.StdEncoding.EncodeToString([]byte("user:pass"))},
		{"pat", PersonalAccessToken("secret"), "Basic " + base64.StdEncoding.EncodeToString([]byte("PAT:secret"))},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
			test.handler.PrepareRequest(req)
			if got := req.Header.Get("Authorization"); got != test.want {
				t.Errorf("Authorization = %q, want %q", got, test.want)
			}
		})
	}
}

func TestGetSendsHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	c := newTestClient(t, Options{UserAgent: "go-Build-api"}, BearerToken("tok"))
	resp, err := c.Get(context.Background(), srv.URL, &RequestOptions{
		Accept:  "application/json;api-version=4.1-preview.3",
		Headers: map[string]string{"X-TFS-FedAuthRedirect": "Suppress"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(resp.Body) != `{"ok":true}` {
		t.Errorf("body = %q", resp.Body)
	}
	for k, want := range map[string]string{
		"User-Agent":            "go-Build-api",
		"Accept":                "application/json;api-version=4.1-preview.3",
		"Authorization":         "Bearer tok",
		"X-Tfs-Fedauthredirect": "Suppress",
		"Accept-Encoding":       acceptEncoding,
	} {
		if got.Get(k) != want {
			t.Errorf("%s = %q, want %q", k, got.Get(k), want)
		}
	}
}

func TestCreateEncodesJSON(t *testing.T) {
	var body []byte
	var contentType, method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	c := newTestClient(t, Options{})
	if _, err := c.Create(context.Background(), srv.URL, map[string]int{"id": 7}, nil); err != nil {
		t.Fatal(err)
	}
	if method != http.MethodPost {
		t.Errorf("method = %q, want POST", method)
	}
	if contentType != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", contentType)
	}
	if string(body) != `{"id":7}` {
		t.Errorf("body = %q", body)
	}

	if _, err := c.Update(context.Background(), srv.URL, []byte(`[{"op":"add"}]`), &RequestOptions{ContentType: "application/json-patch+json"}); err != nil {
		t.Fatal(err)
	}
	if method != http.MethodPatch || contentType != "application/json-patch+json" {
		t.Errorf("got %s %q, want PATCH application/json-patch+json", method, contentType)
	}
	if string(body) != `[{"op":"add"}]` {
		t.Errorf("body = %q", body)
	}
}

func TestReplaceWithoutBody(t *testing.T) {
	var length int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		length = r.ContentLength
		_, _ = io.WriteString(w, `{"count":1,"value":["a"]}`)
	}))
	defer srv.Close()

	c := newTestClient(t, Options{})
	if _, err := c.Replace(context.Background(), srv.URL, nil, nil); err != nil {
		t.Fatal(err)
	}
	if length != 0 {
		t.Errorf("ContentLength = %d, want 0", length)
	}
}

func TestNotFoundReturnsNilBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"gone"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, Options{})
	resp, err := c.Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get returned error %v, want nil", err)
	}
	if resp.StatusCode != http.StatusNotFound || resp.Body != nil {
		t.Errorf("got status %d body %q, want 404 and nil body", resp.StatusCode, resp.Body)
	}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		typeKey string
	}{
		{"service message", http.StatusBadRequest, `{"message":"TF400898: bad","typeKey":"InvalidRequestException"}`, "TF400898: bad", "InvalidRequestException"},
		{"no body", http.StatusInternalServerError, ``, "Failed request: (500)", ""},
		{"html body", http.StatusUnauthorized, `<html></html>`, "Failed request: (401)", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				_, _ = io.WriteString(w, test.body)
			}))
			defer srv.Close()

			c := newTestClient(t, Options{})
			_, err := c.Get(context.Background(), srv.URL, nil)
			var restErr *Error
			if !errors.As(err, &restErr) {
				t.Fatalf("err = %v, want *Error", err)
			}
			if restErr.StatusCode != test.status || restErr.Message != test.want || restErr.TypeKey != test.typeKey {
				t.Errorf("got %d %q %q, want %d %q %q", restErr.StatusCode, restErr.Message, restErr.TypeKey, test.status, test.want, test.typeKey)
			}
		})
	}
}

func TestStreamNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, Options{})
	_, err := c.Stream(context.Background(), http.MethodGet, srv.URL, nil, &RequestOptions{Accept: "application/zip"})
	if !IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestDecompression(t *testing.T) {
	const payload = `{"value":"compressed"}`
	encoders := map[string]func([]byte) []byte{
		"gzip": func(b []byte) []byte {
			var buf bytes.Buffer
			w := gzip.NewWriter(&buf)
			_, _ = w.Write(b)
			_ = w.Close()
			return buf.Bytes()
		},
		"br": func(b []byte) []byte {
			var buf bytes.Buffer
			w := brotli.NewWriter(&buf)
			_, _ = w.Write(b)
			_ = w.Close()
			return buf.Bytes()
		},
		"zstd": func(b []byte) []byte {
			enc, _ := zstd.NewWriter(nil)
			defer enc.Close()
			return enc.EncodeAll(b, nil)
		},
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Encoding", name)
				_, _ = w.Write(encode([]byte(payload)))
			}))
			defer srv.Close()

			c := newTestClient(t, Options{})
			resp, err := c.Get(context.Background(), srv.URL, nil)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(payload, string(resp.Body)); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		wantCalls int32
		wantErr   bool
	}{
		{"get retries", http.MethodGet, 3, false},
		{"post does not retry", http.MethodPost, 1, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) < 3 {
					w.WriteHeader(http.StatusServiceUnavailable)
					return
				}
				_, _ = io.WriteString(w, `{}`)
			}))
			defer srv.Close()

			c := newTestClient(t, Options{MaxRetries: 2, RetryBackoff: time.Millisecond})
			_, err := c.Send(context.Background(), test.method, srv.URL, nil, nil)
			if (err != nil) != test.wantErr {
				t.Errorf("err = %v, wantErr %v", err, test.wantErr)
			}
			if got := calls.Load(); got != test.wantCalls {
				t.Errorf("calls = %d, want %d", got, test.wantCalls)
			}
		})
	}
}

func TestProxyBypass(t *testing.T) {
	proxy, err := newProxyFunc(&ProxyConfig{
		URL:         "http://proxy.local:8888",
		Username:    "u",
		Password:    "p",
		BypassHosts: []string{"internal.example.com", ".corp"},
	})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		target string
		want   string
	}{
		{"https://dev.azure.com/org", "http://u:p@proxy.local:8888"},
		{"https://internal.example.com/tfs", ""},
		{"https://build.corp/tfs", ""},
	}
	for _, test := range tests {
		u, _ := url.Parse(test.target)
		got, err := proxy(u)
		if err != nil {
			t.Fatal(err)
		}
		gotStr := ""
		if got != nil {
			gotStr = got.String()
		}
		if gotStr != test.want {
			t.Errorf("proxy(%q) = %q, want %q", test.target, gotStr, test.want)
		}
	}
}
