package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MediaStore persists uploaded binary content and returns a public URL for it.
// Post and story creation call Put before their transaction commits so a
// storage failure still rolls the rows back.
type MediaStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewObjectKey builds a unique object key under prefix, keeping the original
// file extension.
func NewObjectKey(prefix, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
}
