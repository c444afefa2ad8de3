package web

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"kgeyst.com/describer/pkg/common"
	"kgeyst.com/describer/pkg/describer/domain"
)

const (
	defaultMaxDownloadSize = 8 * 1024 * 1024
	defaultDownloadTimeout = 30 * time.Second
)

var preferredExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

type TempFilePathProvider interface {
	GetTempFilePath(extension string) string
}

// Resource is something fetched over HTTP: an image, an HTML page or a feed.
type Resource struct {
	URL         string
	Content     []byte
	ContentType string
}

// IsImage tells by the Content-Type header, or, if the server didn't bother to send a meaningful one,
// by the extension of the URL.
func (r *Resource) IsImage() bool {
	if common.IsImageContentType(r.ContentType) {
		return true
	}
	mediaType, _, _ := mime.ParseMediaType(r.ContentType)
	if mediaType == "" || mediaType == "application/octet-stream" {
		return common.IsImageFormat(r.URL)
	}
	return false
}

type Downloader struct {
	httpClient           *http.Client
	tempFilePathProvider TempFilePathProvider
	maxSize              int64
}

func NewDownloader(config *common.Config, tempFilePathProvider TempFilePathProvider) *Downloader {
	return &Downloader{
		httpClient:           &http.Client{Timeout: defaultDownloadTimeout},
		tempFilePathProvider: tempFilePathProvider,
		maxSize:              int64(config.GetIntOrDefault(domain.ConfigKeyMaxDownloadSize, defaultMaxDownloadSize)),
	}
}

func (d *Downloader) Fetch(ctx context.Context, rawURL string) (*Resource, error) {
	content, contentType, err := common.ReadAllFromURLWithType(ctx, d.httpClient, rawURL, d.maxSize)
	if err != nil {
		return nil, err
	}
	return &Resource{
		URL:         rawURL,
		Content:     content,
		ContentType: contentType,
	}, nil
}

// Save writes the resource to a new temp file and returns its path. The caller owns the file.
func (d *Downloader) Save(resource *Resource) (string, error) {
	filePath := d.tempFilePathProvider.GetTempFilePath(guessExtension(resource))
	err := os.WriteFile(filePath, resource.Content, 0600)
	if err != nil {
		return "", err
	}
	return filePath, nil
}

// DownloadImage fetches an image and saves it to a temp file. Fails if the URL turns out not to be an image.
func (d *Downloader) DownloadImage(ctx context.Context, rawURL string) (string, error) {
	resource, err := d.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if !resource.IsImage() {
		return "", fmt.Errorf("%s is not an image (content type %q)", rawURL, resource.ContentType)
	}
	return d.Save(resource)
}

func guessExtension(resource *Resource) string {
	parsed, err := url.Parse(resource.URL)
	if err == nil && common.IsImageFormat(parsed.Path) {
		return strings.ToLower(path.Ext(parsed.Path))
	}
	mediaType, _, err := mime.ParseMediaType(resource.ContentType)
	if err != nil {
		return ""
	}
	if extension, ok := preferredExtensions[mediaType]; ok {
		return extension
	}
	extensions, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(extensions) == 0 {
		return ""
	}
	return extensions[0]
}
