package fetcher

import (
	"context"
	"fmt"
	"io"

	"github.com/andyle182810/settingsprobe/httpclient"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/unicode"
)

const SettingsURL = "http://localhost:3000/api/settings"

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeHTTPError
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeHTTPError:
		return "http_error"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

type Getter interface {
	Get(ctx context.Context, url string) (*httpclient.Response, error)
}

var _ Getter = (*httpclient.Client)(nil)

// Fetcher performs one GET against a fixed URL and reports the result on out.
type Fetcher struct {
	client Getter
	out    io.Writer
	url    string
	logger zerolog.Logger
}

type Option func(*Fetcher)

func WithURL(url string) Option {
	return func(f *Fetcher) {
		f.url = url
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

func New(client Getter, out io.Writer, opts ...Option) *Fetcher {
	f := &Fetcher{
		client: client,
		out:    out,
		url:    SettingsURL,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *Fetcher) URL() string {
	return f.url
}

// Run performs the request and prints exactly one of the three outcomes.
// It never returns an error: every failure is reported on out.
func (f *Fetcher) Run(ctx context.Context) Outcome {
	outcome, text := f.fetch(ctx)

	if _, err := io.WriteString(f.out, text); err != nil {
		f.logger.Error().Err(err).Msg("Failed to write result")
	}

	f.logger.Debug().
		Str("url", f.url).
		Stringer("outcome", outcome).
		Msg("Fetch completed")

	return outcome
}

func (f *Fetcher) fetch(ctx context.Context) (Outcome, string) {
	resp, err := f.client.Get(ctx, f.url)
	if err != nil {
		if svcErr, ok := httpclient.IsServiceError(err); ok {
			body, decodeErr := decodeBody(svcErr.Body)
			if decodeErr != nil {
				return OutcomeError, formatError(decodeErr)
			}

			return OutcomeHTTPError, fmt.Sprintf("HTTP Error: %d\n%s\n", svcErr.StatusCode, body)
		}

		return OutcomeError, formatError(err)
	}

	body, err := decodeBody(resp.Body)
	if err != nil {
		return OutcomeError, formatError(err)
	}

	return OutcomeSuccess, body + "\n"
}

func formatError(err error) string {
	return fmt.Sprintf("Error: %v\n", err)
}

// decodeBody decodes raw as UTF-8, replacing invalid sequences with U+FFFD.
func decodeBody(raw []byte) (string, error) {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	return string(decoded), nil
}
