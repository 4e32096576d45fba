package pipeline

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mberetvas/FoodScraper/fetch"
	"github.com/mberetvas/FoodScraper/log"
	"github.com/mberetvas/FoodScraper/recipe"
	"github.com/mberetvas/FoodScraper/scrape"
	"github.com/mberetvas/FoodScraper/store"
)

// Pipeline runs one scrape from URL to JSON file: validate and look up the
// site, fetch the page, extract the recipe, write the document. There is no
// retry and no partial output; the first error aborts the run before
// anything is written.
type Pipeline struct {
	fetcher  *fetch.Fetcher
	registry *scrape.Registry
	store    store.RecipeStore
	log      zerolog.Logger
}

func New(fetcher *fetch.Fetcher, registry *scrape.Registry, recipeStore store.RecipeStore) *Pipeline {
	return &Pipeline{
		fetcher:  fetcher,
		registry: registry,
		store:    recipeStore,
		log:      log.NewLogger("pipeline"),
	}
}

// Run scrapes the given URL and returns the path of the written JSON file.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (string, error) {
	u, err := fetch.ParseURL(rawURL)
	if err != nil {
		return "", err
	}

	// The site lookup happens before the fetch so that an unsupported URL
	// never triggers a network call.
	extractor, err := p.registry.Lookup(u)
	if err != nil {
		return "", err
	}

	body, err := p.fetcher.Fetch(ctx, u)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse HTML from %s", u.String())
	}

	rec, err := extractor.Extract(doc, u)
	if err != nil {
		return "", err
	}

	p.warnEmptyFields(rec, u.String())

	name := rec.FileName()

	exists, err := p.store.Contains(name)
	if err != nil {
		return "", err
	}
	if exists {
		p.log.Warn().Str("name", name).Msg("overwriting existing recipe file")
	}

	data, err := rec.MarshalPretty()
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize recipe")
	}

	if err := p.store.Store(name, bytes.NewReader(data)); err != nil {
		return "", err
	}

	return p.store.Path(name), nil
}

// warnEmptyFields makes missing page elements visible without failing the
// run: a selector that matched nothing leaves its field empty.
func (p *Pipeline) warnEmptyFields(rec *recipe.Recipe, pageURL string) {
	empty := []string{}
	if rec.Title == "" {
		empty = append(empty, "title")
	}
	if rec.Description == "" {
		empty = append(empty, "description")
	}
	if len(rec.Ingredients) == 0 {
		empty = append(empty, "ingredients")
	}
	if len(rec.Steps) == 0 {
		empty = append(empty, "steps")
	}
	if rec.ImageURL == "" {
		empty = append(empty, "image_url")
	}

	if len(empty) > 0 {
		p.log.Warn().Str("url", pageURL).Strs("fields", empty).Msg("some recipe fields were not found on the page")
	}
}
