package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const imageCheckTimeout = 10 * time.Second

// ImageChecker validates that a URL references actual image content by
// fetching it and sniffing the response bytes. The single request is
// bounded by a fixed timeout and never retried.
type ImageChecker struct {
	client *http.Client
}

func NewImageChecker() *ImageChecker {
	return &ImageChecker{
		client: &http.Client{Timeout: imageCheckTimeout},
	}
}

// Check fetches url and verifies the content is an image. An empty url is
// valid (the background image is optional).
func (c *ImageChecker) Check(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("invalid image url: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch image url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("image url returned status %d", resp.StatusCode)
	}

	// mimetype needs only the first few KB to classify the content
	mtype, err := mimetype.DetectReader(io.LimitReader(resp.Body, 3072))
	if err != nil {
		return fmt.Errorf("failed to sniff image content: %w", err)
	}
	if !mimetypeIsImage(mtype.String()) {
		return fmt.Errorf("url content is %s, not an image", mtype.String())
	}
	return nil
}

func mimetypeIsImage(mime string) bool {
	return len(mime) > 6 && mime[:6] == "image/"
}
