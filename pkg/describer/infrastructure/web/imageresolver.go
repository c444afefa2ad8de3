package web

import (
	"context"
	"fmt"
	"mime"
)

// ImageResolver turns a URL into a local image file. The URL may point to the image itself or to an HTML page
// which references one (e.g. via og:image).
type ImageResolver struct {
	downloader      *Downloader
	pageImageFinder *PageImageFinder
}

func NewImageResolver(downloader *Downloader, pageImageFinder *PageImageFinder) *ImageResolver {
	return &ImageResolver{
		downloader:      downloader,
		pageImageFinder: pageImageFinder,
	}
}

// Resolve returns the path of a temp file which holds the image. The caller is responsible for removing it.
func (i *ImageResolver) Resolve(ctx context.Context, rawURL string) (string, error) {
	resource, err := i.downloader.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if resource.IsImage() {
		return i.downloader.Save(resource)
	}
	if !isHTML(resource.ContentType) {
		return "", fmt.Errorf("%s is neither an image nor an HTML page (content type %q)", rawURL, resource.ContentType)
	}
	imageURL, err := i.pageImageFinder.FindImageURL(rawURL, resource.Content)
	if err != nil {
		return "", fmt.Errorf("%s: %w", rawURL, err)
	}
	return i.downloader.DownloadImage(ctx, imageURL)
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
