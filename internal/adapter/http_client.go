package adapter

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"net/url"
	"strings"
)

// gzipBody compresses an upload body.
func gzipBody(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(body); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

// joinEndpoint appends path to the API base URL.
func joinEndpoint(endpoint, path string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", ErrEmptyEndpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid endpoint %q: address must include host and scheme", endpoint)
	}

	return strings.TrimRight(u.String(), "/") + path, nil
}
