package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"selfie-bot/pkg/retrylimit"
)

// ImageClient renders an image prompt through the pollinations image
// endpoint and returns the raw image bytes. Rendering is retried with an
// adaptive rate limit: the endpoint regularly answers 429 under load.
type ImageClient struct {
	baseURL string
	model   string
	client  *http.Client
	limiter *retrylimit.AdaptiveLimiter
}

func NewImageClient(model string) *ImageClient {
	if model == "" {
		model = "flux"
	}
	return &ImageClient{
		baseURL: "https://image.pollinations.ai/prompt/",
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
		limiter: retrylimit.NewAdaptiveLimiter(1, 0.2, 2, 0.2, 0.5),
	}
}

func (c *ImageClient) Render(ctx context.Context, prompt string) ([]byte, error) {
	u := c.baseURL + url.PathEscape(prompt) +
		"?model=" + url.QueryEscape(c.model) + "&nologo=true&private=true"

	var image []byte
	err := retrylimit.WithRetry(ctx, func() error {
		b, err := c.fetch(ctx, u)
		if err != nil {
			return err
		}
		image = b
		return nil
	}, c.limiter, 3)
	return image, err
}

func (c *ImageClient) fetch(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &retrylimit.StatusError{Code: resp.StatusCode, Msg: truncate(body)}
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return nil, fmt.Errorf("image endpoint returned html")
	}

	return io.ReadAll(io.LimitReader(resp.Body, 16<<20))
}
