// Response body decompression based on Content-Encoding.
//
// Supports zstd, brotli, gzip and deflate (zlib framed, as HTTP defines it).

package rest

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// acceptEncoding is advertised on every request.
const acceptEncoding = "gzip, deflate, br, zstd"

// decompressBody wraps body with the decoder matching the Content-Encoding header.
// The returned closer also closes body.
func decompressBody(contentEncoding string, body io.ReadCloser) (io.ReadCloser, error) {
	ce := strings.ToLower(strings.TrimSpace(contentEncoding))
	var reader io.ReadCloser
	switch ce {
	case "", "identity":
		return body, nil
	case "zstd":
		dec, err := zstd.NewReader(body, zstd.WithDecoderMaxMemory(64<<20))
		if err != nil {
			return nil, fmt.Errorf("invalid zstd body: %w", err)
		}
		reader = dec.IOReadCloser()
	case "br":
		reader = io.NopCloser(brotli.NewReader(body))
	case "gzip":
		gr, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("invalid gzip body: %w", err)
		}
		reader = gr
	case "deflate":
		zr, err := zlib.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("invalid deflate body: %w", err)
		}
		reader = zr
	default:
		return nil, fmt.Errorf("unsupported Content-Encoding: %s", contentEncoding)
	}
	return &stackedCloser{Reader: reader, closers: []io.Closer{reader, body}}, nil
}

type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
