package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/mberetvas/FoodScraper/recipe"
)

// SiteExtractor extracts a recipe from a parsed page of one specific site.
type SiteExtractor interface {
	Extract(doc *goquery.Document, pageURL *url.URL) (*recipe.Recipe, error)
}

// Registry maps hosts to their extractors. Looking up the extractor happens
// before any network call, so an unsupported URL is rejected without
// touching the site.
type Registry struct {
	extractors map[string]SiteExtractor
}

func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[string]SiteExtractor),
	}
}

// Register associates an extractor with a host. The host is stored without
// a www. prefix.
func (r *Registry) Register(host string, extractor SiteExtractor) {
	r.extractors[normalizeHost(host)] = extractor
}

// Lookup returns the extractor for the URL's host.
func (r *Registry) Lookup(u *url.URL) (SiteExtractor, error) {
	host := normalizeHost(u.Hostname())

	extractor, ok := r.extractors[host]
	if !ok {
		return nil, errors.Errorf("unsupported site: %s", host)
	}

	return extractor, nil
}

// Hosts returns the registered hosts.
func (r *Registry) Hosts() []string {
	hosts := make([]string, 0, len(r.extractors))
	for host := range r.extractors {
		hosts = append(hosts, host)
	}
	return hosts
}

func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
