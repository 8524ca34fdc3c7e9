package blob

import (
	"context"
)

// Store is the blob store collaborator. Put writes the image bytes and
// returns a public URL. Documents referencing a blob are only written after
// Put has succeeded, so a failed Put never leaves a dangling reference.
type Store interface {
	Put(ctx context.Context, data []byte, contentType string) (string, error)
}
