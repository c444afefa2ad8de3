package rss

import (
	"bytes"
	"context"
	"errors"
	"strings"

	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/mmcdole/gofeed/rss"

	"kgeyst.com/describer/pkg/common"
	"kgeyst.com/describer/pkg/describer/infrastructure/web"
)

var ErrNoImageInFeed = errors.New("no image found in the feed")

type Fetcher interface {
	Fetch(ctx context.Context, url string) (*web.Resource, error)
}

// FeedImageFinder finds the image of the most recent item of an RSS feed.
type FeedImageFinder struct {
	fetcher Fetcher
}

func NewFeedImageFinder(fetcher Fetcher) *FeedImageFinder {
	return &FeedImageFinder{
		fetcher: fetcher,
	}
}

// FindLatestImageURL walks the items in feed order (newest first, as feeds usually go) and returns the first
// image found: an image enclosure, or a Media RSS content/thumbnail. Falls back to the channel image.
func (f *FeedImageFinder) FindLatestImageURL(ctx context.Context, feedURL string) (string, error) {
	resource, err := f.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return "", err
	}
	fp := rss.Parser{}
	rssFeed, err := fp.Parse(bytes.NewReader(resource.Content))
	if err != nil {
		return "", err
	}
	for _, item := range rssFeed.Items {
		imageURL := findItemImageURL(item)
		if imageURL != "" {
			return imageURL, nil
		}
	}
	if rssFeed.Image != nil && strings.TrimSpace(rssFeed.Image.URL) != "" {
		return strings.TrimSpace(rssFeed.Image.URL), nil
	}
	return "", ErrNoImageInFeed
}

func findItemImageURL(item *rss.Item) string {
	if item.Enclosure != nil && item.Enclosure.URL != "" {
		if common.IsImageContentType(item.Enclosure.Type) || common.IsImageFormat(item.Enclosure.URL) {
			return strings.TrimSpace(item.Enclosure.URL)
		}
	}
	media := item.Extensions["media"]
	for _, name := range []string{"content", "thumbnail"} {
		for _, extension := range media[name] {
			imageURL := findMediaImageURL(extension)
			if imageURL != "" {
				return imageURL
			}
		}
	}
	return ""
}

func findMediaImageURL(extension ext.Extension) string {
	imageURL := strings.TrimSpace(extension.Attrs["url"])
	if imageURL == "" {
		return ""
	}
	medium := extension.Attrs["medium"]
	mediaType := extension.Attrs["type"]
	if medium == "image" || common.IsImageContentType(mediaType) || common.IsImageFormat(imageURL) || extension.Name == "thumbnail" {
		return imageURL
	}
	return ""
}
