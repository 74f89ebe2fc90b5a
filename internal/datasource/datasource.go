// Package datasource resolves an input location (a local path or an http(s)
// URL) to a readable source.
package datasource

import (
	"context"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"schemagen/internal/datasource/file"
	"schemagen/internal/datasource/httpds"
)

// Source is a named byte stream that can be opened once per read.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Name() string
}

// For returns the source for location. http:// and https:// locations use
// httpds with cfg; anything else is a local path.
func For(location string, cfg httpds.Config) Source {
	if IsURL(location) {
		return httpds.NewRemote(location, cfg)
	}
	return file.NewLocal(location)
}

// IsURL reports whether location is an http(s) URL.
func IsURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// Ext returns the lower-cased file extension of location. For URLs the query
// string is ignored.
func Ext(location string) string {
	if IsURL(location) {
		if u, err := url.Parse(location); err == nil {
			return strings.ToLower(path.Ext(u.Path))
		}
	}
	return strings.ToLower(filepath.Ext(location))
}
