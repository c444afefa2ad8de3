package domain

import "context"

// DescriptionService turns an image on disk into a short description of what's on it.
type DescriptionService struct {
	imageLoader ImageLoader
	predictor   Predictor
}

func NewDescriptionService(imageLoader ImageLoader, predictor Predictor) *DescriptionService {
	return &DescriptionService{
		imageLoader: imageLoader,
		predictor:   predictor,
	}
}

// DescribeImage loads the image found at `path`, sends it to the prediction service and formats the
// returned tags with SelectBestTags. Errors of the loader and the predictor are returned as is.
func (d *DescriptionService) DescribeImage(ctx context.Context, path string) (string, error) {
	image, err := d.imageLoader.LoadImageBytes(path)
	if err != nil {
		return "", err
	}
	predictions, err := d.predictor.Predict(ctx, image)
	if err != nil {
		return "", err
	}
	return SelectBestTags(predictions), nil
}
