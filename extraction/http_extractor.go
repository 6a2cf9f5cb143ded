package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrExtractionFailed = errors.New("sheet extraction failed")

type httpExtractor struct {
	endpoint string
	client   *http.Client
}

// NewHTTPExtractor talks to the extraction service over a single POST
// endpoint: raw image bytes in, the SheetData JSON shape out.
func NewHTTPExtractor(endpoint string, timeout time.Duration) (Extractor, error) {
	if endpoint == "" {
		return nil, errors.New("extraction endpoint is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpExtractor{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

func (e *httpExtractor) Extract(ctx context.Context, contentType string, image io.Reader) (*SheetData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, image)
	if err != nil {
		return nil, fmt.Errorf("failed to build extraction request: %w", err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: service returned %d: %s", ErrExtractionFailed, resp.StatusCode, body)
	}

	var data SheetData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: invalid response: %w", ErrExtractionFailed, err)
	}
	if data.TotalMatches <= 0 {
		return nil, fmt.Errorf("%w: non-positive match count %d", ErrExtractionFailed, data.TotalMatches)
	}
	return &data, nil
}
