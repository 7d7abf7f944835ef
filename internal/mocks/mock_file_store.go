package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// StoredUpload captures one upload the mock accepted
type StoredUpload struct {
	Category string
	Filename string
	Size     int64
}

// MockFileStore implements domain.FileStore for testing. By default it
// records uploads and returns deterministic references.
type MockFileStore struct {
	SaveFunc func(ctx context.Context, category string, upload *domain.Upload) (string, error)

	mu      sync.Mutex
	Uploads []StoredUpload
}

// NewMockFileStore creates a new MockFileStore
func NewMockFileStore() *MockFileStore {
	return &MockFileStore{}
}

// Save stores an upload
func (m *MockFileStore) Save(ctx context.Context, category string, upload *domain.Upload) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, category, upload)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Uploads = append(m.Uploads, StoredUpload{
		Category: category,
		Filename: upload.Filename,
		Size:     upload.Size,
	})
	return fmt.Sprintf("uploads/%s/stored-%d", category, len(m.Uploads)), nil
}

// Compile-time interface compliance verification
var _ domain.FileStore = (*MockFileStore)(nil)
