package httpclient

import (
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

type Option func(*Client)

func WithRestyClient(restyClient *resty.Client) Option {
	return func(c *Client) {
		if restyClient != nil {
			c.restyClient = restyClient
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
