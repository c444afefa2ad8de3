package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// ReadAllFromURL reads at most `maxSize` bytes of content from the URL. Non-2xx responses are treated as errors.
// Content bigger than `maxSize` is rejected so that an endlessly streaming page can't exhaust memory.
func ReadAllFromURL(ctx context.Context, client *http.Client, url string, maxSize int64) ([]byte, error) {
	content, _, err := ReadAllFromURLWithType(ctx, client, url, maxSize)
	return content, err
}

// ReadAllFromURLWithType is ReadAllFromURL which also returns the Content-Type header of the response.
func ReadAllFromURLWithType(ctx context.Context, client *http.Client, url string, maxSize int64) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, "", fmt.Errorf("GET %s failed with status code: %d", url, res.StatusCode)
	}
	content, err := io.ReadAll(io.LimitReader(res.Body, maxSize+1))
	if err != nil {
		return nil, "", err
	}
	if int64(len(content)) > maxSize {
		return nil, "", fmt.Errorf("content at %s exceeds %d bytes", url, maxSize)
	}
	return content, res.Header.Get("Content-Type"), nil
}
