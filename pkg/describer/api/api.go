package api

import (
	"context"
	"errors"
	"os"
	"strings"

	"kgeyst.com/describer/pkg/common"
	"kgeyst.com/describer/pkg/describer/domain"
	"kgeyst.com/describer/pkg/describer/infrastructure/customvision"
	"kgeyst.com/describer/pkg/describer/infrastructure/filesystem"
	"kgeyst.com/describer/pkg/describer/infrastructure/logging"
	"kgeyst.com/describer/pkg/describer/infrastructure/rss"
	"kgeyst.com/describer/pkg/describer/infrastructure/web"
)

// See domain/config.go
const (
	ConfigKeyPredictionURL = domain.ConfigKeyPredictionURL
	ConfigKeyPredictionKey = domain.ConfigKeyPredictionKey
	ConfigKeyLogPath       = domain.ConfigKeyLogPath
)

var ErrNothingToDescribe = errors.New("nothing to describe")

// API is the entrypoint to the describer. It shouldn't contain any logic of its own; it glues all the components
// together. It can be used from a console, an IRC bot etc.
type API interface {
	// DescribeFile describes the image stored at `path`, e.g. `a "cat" and a "dog"`. Returns an empty string if
	// the service isn't confident about any tag.
	DescribeFile(ctx context.Context, path string) (string, error)
	// DescribeURL downloads the image at `url` and describes it. If `url` is an HTML page, its main image
	// (og:image or the first <img>) is described instead.
	DescribeURL(ctx context.Context, url string) (string, error)
	// DescribeFeed describes the image of the most recent item of the RSS feed at `feedURL`.
	DescribeFeed(ctx context.Context, feedURL string) (string, error)
	// DescribeText describes the first URL found in a free-form message, or, if there's none,
	// treats the whole message as a file path.
	DescribeText(ctx context.Context, text string) (string, error)
}

type api struct {
	descriptionService *domain.DescriptionService
	urlFinder          *web.URLFinder
	imageResolver      *web.ImageResolver
	downloader         *web.Downloader
	feedImageFinder    *rss.FeedImageFinder
	logger             common.Logger
}

func NewAPI(config *common.Config) API {
	return NewAPIWithLogger(config, common.NewFileLogger(config.GetStringOrDefault(ConfigKeyLogPath, "log.txt")))
}

// NewAPIWithLogger is like NewAPI but shares an existing logger with the caller.
func NewAPIWithLogger(config *common.Config, logger common.Logger) API {
	return newAPI(config, customvision.NewClientFromConfig(config), logger)
}

func newAPI(config *common.Config, predictor domain.Predictor, logger common.Logger) *api {
	tempFilePathProvider := filesystem.NewTempFilePathProvider(config)
	downloader := web.NewDownloader(config, tempFilePathProvider)
	return &api{
		descriptionService: domain.NewDescriptionService(
			filesystem.NewImageLoader(),
			logging.NewPredictorDecorator(predictor, logger),
		),
		urlFinder:       web.NewURLFinder(),
		imageResolver:   web.NewImageResolver(downloader, web.NewPageImageFinder()),
		downloader:      downloader,
		feedImageFinder: rss.NewFeedImageFinder(downloader),
		logger:          logger,
	}
}

func (a *api) DescribeFile(ctx context.Context, path string) (string, error) {
	return a.descriptionService.DescribeImage(ctx, path)
}

func (a *api) DescribeURL(ctx context.Context, url string) (string, error) {
	filePath, err := a.imageResolver.Resolve(ctx, url)
	if err != nil {
		return "", err
	}
	defer a.removeTempFile(filePath)
	return a.descriptionService.DescribeImage(ctx, filePath)
}

func (a *api) DescribeFeed(ctx context.Context, feedURL string) (string, error) {
	imageURL, err := a.feedImageFinder.FindLatestImageURL(ctx, feedURL)
	if err != nil {
		return "", err
	}
	filePath, err := a.downloader.DownloadImage(ctx, imageURL)
	if err != nil {
		return "", err
	}
	defer a.removeTempFile(filePath)
	return a.descriptionService.DescribeImage(ctx, filePath)
}

func (a *api) DescribeText(ctx context.Context, text string) (string, error) {
	urls := a.urlFinder.FindURLs(text)
	if len(urls) != 0 {
		return a.DescribeURL(ctx, urls[0]) // one image per message so far
	}
	path := strings.TrimSpace(text)
	if path == "" {
		return "", ErrNothingToDescribe
	}
	return a.DescribeFile(ctx, path)
}

func (a *api) removeTempFile(filePath string) {
	err := os.Remove(filePath)
	if err != nil {
		a.logger.Log("failed to remove a temp file: " + err.Error())
	}
}

// DescribeImage sends the image at `path` to the prediction endpoint at `url`, authenticated with `apiKey`,
// and returns a description of the most confident tags, e.g. `a "cat", a "dog" and a "tree"`.
func DescribeImage(path, url, apiKey string) (string, error) {
	service := domain.NewDescriptionService(
		filesystem.NewImageLoader(),
		customvision.NewClient(url, apiKey, nil),
	)
	return service.DescribeImage(context.Background(), path)
}
