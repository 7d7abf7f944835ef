package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	gopath "path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// LocalStoreImpl implements domain.FileStore on the local filesystem.
// Files land under <root>/<category>/ and the returned reference is the
// forward-slash relative path served by the static file route.
type LocalStoreImpl struct {
	root string
}

// NewLocalStore creates the upload directories and returns the store
func NewLocalStore(root string) (*LocalStoreImpl, error) {
	for _, category := range []string{domain.UploadProfiles, domain.UploadIDs} {
		if err := os.MkdirAll(filepath.Join(root, category), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &LocalStoreImpl{root: root}, nil
}

// Save implements domain.FileStore
func (s *LocalStoreImpl) Save(ctx context.Context, category string, upload *domain.Upload) (string, error) {
	name := uuid.NewString() + filepath.Ext(upload.Filename)
	dst := filepath.Join(s.root, category, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, upload.Content); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	// Reference stored on the user record, forward-slash normalized.
	return gopath.Join(filepath.Base(s.root), category, name), nil
}
