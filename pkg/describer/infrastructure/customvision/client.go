package customvision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kgeyst.com/describer/pkg/common"
	"kgeyst.com/describer/pkg/describer/domain"
)

const (
	predictionKeyHeader  = "Prediction-Key"
	octetStreamMediaType = "application/octet-stream"

	DefaultTimeout = 30 * time.Second

	maxErrorBodySize = 512
)

// Client calls a Custom Vision style prediction endpoint: the image is POSTed as is, and the service replies
// with {"predictions": [{"tagName": "...", "probability": 0.9}, ...]}.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewClient(url, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		url:        url,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func NewClientFromConfig(config *common.Config) *Client {
	return NewClient(
		config.GetString(domain.ConfigKeyPredictionURL),
		config.GetString(domain.ConfigKeyPredictionKey),
		&http.Client{Timeout: config.GetDurationOrDefault(domain.ConfigKeyPredictionTimeout, DefaultTimeout)},
	)
}

type predictionResponse struct {
	Predictions *[]predictionRecord `json:"predictions"`
}

type predictionRecord struct {
	TagName     *string  `json:"tagName"`
	Probability *float64 `json:"probability"`
}

func (c *Client) Predict(ctx context.Context, image []byte) ([]domain.Prediction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	req.Header.Set(predictionKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", octetStreamMediaType)
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", domain.ErrTransport, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: prediction request failed with status code: %d (%s)", domain.ErrTransport, res.StatusCode, truncate(body, maxErrorBodySize))
	}
	return parsePredictions(body)
}

func parsePredictions(body []byte) ([]domain.Prediction, error) {
	var response predictionResponse
	err := json.Unmarshal(body, &response)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrResponseShape, err)
	}
	if response.Predictions == nil {
		return nil, fmt.Errorf("%w: missing \"predictions\"", domain.ErrResponseShape)
	}
	result := make([]domain.Prediction, 0, len(*response.Predictions))
	for index, record := range *response.Predictions {
		if record.TagName == nil {
			return nil, fmt.Errorf("%w: prediction #%d has no \"tagName\"", domain.ErrResponseShape, index)
		}
		if record.Probability == nil {
			return nil, fmt.Errorf("%w: prediction #%d has no \"probability\"", domain.ErrResponseShape, index)
		}
		result = append(result, domain.Prediction{
			TagName:     *record.TagName,
			Probability: *record.Probability,
		})
	}
	return result, nil
}

func truncate(body []byte, maxSize int) string {
	if len(body) <= maxSize {
		return string(body)
	}
	return string(body[:maxSize]) + "..."
}
