// Package services holds one typed wrapper per backend resource.
package services

import (
	"context"
	"net/url"
)

// Backend is implemented by *tools.BackendClient.
type Backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, query url.Values, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string) error
}
