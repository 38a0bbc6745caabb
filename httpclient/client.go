package httpclient

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Client issues plain GET requests. It sets no timeout, performs no retries
// and follows redirects the way net/http does.
type Client struct {
	restyClient *resty.Client
	logger      zerolog.Logger
}

func New(opts ...Option) *Client {
	c := &Client{
		restyClient: nil,
		logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.restyClient == nil {
		c.restyClient = resty.New()
	}

	c.restyClient.SetLogger(newRestyLogger(c.logger))

	return c
}

// Get fetches url and returns the full body. A status of 400 or above is
// reported as a *ServiceError carrying the error body.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	c.logger.Debug().Str("url", url).Msg("Sending request")

	resp, err := c.restyClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	c.logger.Debug().
		Str("url", url).
		Int("status_code", resp.StatusCode()).
		Int("body_size", len(resp.Body())).
		Msg("Received response")

	if resp.IsError() {
		return nil, NewServiceError(resp.StatusCode(), resp.Body())
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}
