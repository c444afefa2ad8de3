package filesystem

import (
	"fmt"
	"io"
	"os"

	"kgeyst.com/describer/pkg/describer/domain"
)

type ImageLoader struct{}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{}
}

func (i *ImageLoader) LoadImageBytes(path string) ([]byte, error) {
	return LoadImageBytes(path)
}

// LoadImageBytes returns the complete raw content of the file at `path`. The file is closed before returning,
// including when the read fails halfway. All failures match domain.ErrFileAccess.
func LoadImageBytes(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFileAccess, err)
	}
	defer func() {
		_ = file.Close()
	}()
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFileAccess, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrFileAccess, path)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", domain.ErrFileAccess, path, err)
	}
	return data, nil
}
