package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaStore writes generated images to the local media directory. Filenames
// carry a short random suffix so regenerations never clobber earlier output.
type MediaStore struct {
	baseDir string
	logger  *zap.Logger
}

func NewMediaStore(baseDir string, logger *zap.Logger) (*MediaStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	return &MediaStore{
		baseDir: baseDir,
		logger:  logger,
	}, nil
}

// Save writes data under "{prefix}_{8 hex chars}.png" and returns the path
// relative to the media directory.
func (m *MediaStore) Save(prefix string, data []byte) (string, error) {
	name := fmt.Sprintf("%s_%s.png", prefix, uuid.NewString()[:8])
	path := filepath.Join(m.baseDir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	m.logger.Debug("media saved",
		zap.String("file", name),
		zap.Int("bytes", len(data)),
	)
	return name, nil
}

// Open returns the absolute path for a stored file name.
func (m *MediaStore) Path(name string) string {
	return filepath.Join(m.baseDir, name)
}

// Remove deletes a stored file; missing files are not an error.
func (m *MediaStore) Remove(name string) error {
	err := os.Remove(filepath.Join(m.baseDir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove media file: %w", err)
	}
	return nil
}
