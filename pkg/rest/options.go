package rest

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/pkcs12"
	"golang.org/x/net/http/httpproxy"
)

// Options configures the HTTP transport
type Options struct {
	// UserAgent is sent on every request
	UserAgent string
	// SocketTimeout bounds a whole request, zero means no limit
	SocketTimeout time.Duration
	// IgnoreSSLError disables server certificate verification
	IgnoreSSLError bool
	Proxy          *ProxyConfig
	Cert           *CertConfig
	// MaxRetries is the number of extra attempts for idempotent requests
	MaxRetries int
	// RetryBackoff is the delay before the first retry, doubled each attempt
	RetryBackoff time.Duration
	Logger       *slog.Logger
	// HTTPClient replaces the transport built from the other options
	HTTPClient *http.Client
}

// ProxyConfig routes requests through a proxy
type ProxyConfig struct {
	URL      string
	Username string
	Password string
	// BypassHosts uses NO_PROXY syntax: host names, domain suffixes, IPs or CIDRs
	BypassHosts []string
}

// CertConfig configures TLS roots and the client certificate.
//
// CertFile may be a PEM certificate (with KeyFile) or a PKCS#12 bundle (.pfx, .p12)
// protected by Passphrase.
type CertConfig struct {
	CAFile     string
	CertFile   string
	KeyFile    string
	Passphrase string
}

// newHTTPClient builds the client described by opts
func newHTTPClient(opts *Options) (*http.Client, error) {
	if opts.HTTPClient != nil {
		return opts.HTTPClient, nil
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	// Encodings are negotiated explicitly so zstd and brotli are accepted too.
	transport.DisableCompression = true

	tlsConfig, err := newTLSConfig(opts)
	if err != nil {
		return nil, err
	}
	transport.TLSClientConfig = tlsConfig

	if opts.Proxy != nil && opts.Proxy.URL != "" {
		proxyFunc, err := newProxyFunc(opts.Proxy)
		if err != nil {
			return nil, err
		}
		transport.Proxy = func(req *http.Request) (*url.URL, error) {
			return proxyFunc(req.URL)
		}
	}

	return &http.Client{Transport: transport, Timeout: opts.SocketTimeout}, nil
}

func newProxyFunc(p *ProxyConfig) (func(*url.URL) (*url.URL, error), error) {
	u, err := url.Parse(p.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url %q: %w", p.URL, err)
	}
	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	cfg := httpproxy.Config{
		HTTPProxy:  u.String(),
		HTTPSProxy: u.String(),
		NoProxy:    strings.Join(p.BypassHosts, ","),
	}
	return cfg.ProxyFunc(), nil
}

func newTLSConfig(opts *Options) (*tls.Config, error) {
	cfg := &tls.Config{InsecureSkipVerify: opts.IgnoreSSLError} //nolint:gosec // opt-in
	if opts.Cert == nil {
		return cfg, nil
	}
	c := opts.Cert
	if c.CAFile != "" {
		data, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file: %w", err)
		}
		pool, err := x509.SystemCertPool()
		if err != nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(data) {
			return nil, fmt.Errorf("no certificates found in %s", c.CAFile)
		}
		cfg.RootCAs = pool
	}
	if c.CertFile != "" {
		cert, err := loadClientCert(c)
		if err != nil {
			return nil, err
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	return cfg, nil
}

func loadClientCert(c *CertConfig) (tls.Certificate, error) {
	data, err := os.ReadFile(c.CertFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to read cert file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(c.CertFile)) {
	case ".pfx", ".p12":
		blocks, err := pkcs12.ToPEM(data, c.Passphrase)
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("failed to decode %s: %w", c.CertFile, err)
		}
		var certPEM, keyPEM bytes.Buffer
		for _, b := range blocks {
			if b.Type == "CERTIFICATE" {
				_ = pem.Encode(&certPEM, b)
			} else {
				_ = pem.Encode(&keyPEM, b)
			}
		}
		return tls.X509KeyPair(certPEM.Bytes(), keyPEM.Bytes())
	}

	if c.KeyFile == "" {
		return tls.Certificate{}, errors.New("cert.keyFile is required with a PEM certificate")
	}
	keyData, err := os.ReadFile(c.KeyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to read key file: %w", err)
	}
	if c.Passphrase != "" {
		block, _ := pem.Decode(keyData)
		//nolint:staticcheck // DecryptPEMBlock is deprecated
		if block != nil && x509.IsEncryptedPEMBlock(block) {
			der, err := x509.DecryptPEMBlock(block, []byte(c.Passphrase))
			if err != nil {
				return tls.Certificate{}, fmt.Errorf("failed to decrypt key: %w", err)
			}
			keyData = pem.EncodeToMemory(&pem.Block{Type: block.Type, Bytes: der})
		}
	}
	return tls.X509KeyPair(data, keyData)
}
