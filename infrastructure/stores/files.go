package stores

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type LocalFileStore struct {
	outputDir string
}

// InitializeLocalFileStore creates outputDir if it is missing.
func InitializeLocalFileStore(outputDir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("error on creating output dir='%s': %v", outputDir, err)
	}
	return &LocalFileStore{outputDir: outputDir}, nil
}

// PutDocument overwrites outputDir/fileName with data.
func (fileStore *LocalFileStore) PutDocument(ctx context.Context, fileName string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("error on writing '%s': %w", fileName, err)
	}
	path := fileStore.Path(fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error on writing file='%s': %v", path, err)
	}
	return nil
}

func (fileStore *LocalFileStore) Path(fileName string) string {
	return filepath.Join(fileStore.outputDir, fileName)
}
