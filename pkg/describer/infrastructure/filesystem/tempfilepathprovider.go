package filesystem

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"kgeyst.com/describer/pkg/common"
	"kgeyst.com/describer/pkg/describer/domain"
)

// TempFilePathProvider hands out unique paths for downloaded images.
type TempFilePathProvider struct {
	tempDirectoryPath string
}

func NewTempFilePathProvider(config *common.Config) *TempFilePathProvider {
	return &TempFilePathProvider{
		tempDirectoryPath: config.GetStringOrDefault(domain.ConfigKeyTempDirectory, os.TempDir()),
	}
}

// GetTempFilePath returns a fresh path inside the temp directory. The file name keeps `extension`
// (for example ".jpg") so that the file type stays recognizable.
func (t *TempFilePathProvider) GetTempFilePath(extension string) string {
	return filepath.Join(t.tempDirectoryPath, "image_"+uuid.NewString()+extension)
}
