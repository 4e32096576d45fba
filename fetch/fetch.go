package fetch

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mberetvas/FoodScraper/log"
)

const USER_AGENT = "foodscraper/1.0"

const DefaultTimeout = 30 * time.Second

// ParseURL validates a raw URL string. Only absolute http(s) URLs with a
// host are accepted.
func ParseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.Wrap(err, "invalid URL")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("URL must use http or https scheme: %s", raw)
	}

	if u.Host == "" {
		return nil, errors.Errorf("URL must contain a host: %s", raw)
	}

	return u, nil
}

// Fetcher downloads recipe pages. It performs exactly one GET per call;
// failures are terminal and left to the caller.
type Fetcher struct {
	client *resty.Client
	log    zerolog.Logger
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", USER_AGENT)

	return &Fetcher{
		client: client,
		log:    log.NewLogger("fetch"),
	}
}

// Fetch performs a single GET on the given URL and returns the response body
// as HTML text. A transport error or a non-2xx status is an error.
func (f *Fetcher) Fetch(ctx context.Context, u *url.URL) (string, error) {
	f.log.Debug().Str("url", u.String()).Msg("fetching page")

	resp, err := f.client.R().SetContext(ctx).Get(u.String())
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch %s", u.String())
	}

	if !resp.IsSuccess() {
		return "", errors.Errorf("unexpected status %s fetching %s", resp.Status(), u.String())
	}

	f.log.Debug().Str("url", u.String()).Int("bytes", len(resp.Body())).Msg("fetched page")

	return string(resp.Body()), nil
}
