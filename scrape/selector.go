package scrape

import (
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"

	"github.com/mberetvas/FoodScraper/recipe"
)

// Selectors holds the CSS selectors that locate the recipe fields in one
// site's markup. The ingredients and steps selectors should point at the
// list container; its li items become the individual entries.
type Selectors struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	Steps       string `json:"steps"`
	Image       string `json:"image"`
}

// SelectorExtractor is a SiteExtractor driven entirely by a set of CSS
// selectors. A selector that matches nothing yields an empty field rather
// than an error, so a partially broken page still produces output.
type SelectorExtractor struct {
	title       goquery.Matcher
	description goquery.Matcher
	ingredients goquery.Matcher
	steps       goquery.Matcher
	image       goquery.Matcher
}

// NewSelectorExtractor compiles the selectors up front. Empty selectors are
// allowed and simply leave the corresponding field blank.
func NewSelectorExtractor(sel Selectors) (*SelectorExtractor, error) {
	e := &SelectorExtractor{}

	fields := []struct {
		name    string
		expr    string
		matcher *goquery.Matcher
	}{
		{"title", sel.Title, &e.title},
		{"description", sel.Description, &e.description},
		{"ingredients", sel.Ingredients, &e.ingredients},
		{"steps", sel.Steps, &e.steps},
		{"image", sel.Image, &e.image},
	}

	for _, f := range fields {
		if f.expr == "" {
			continue
		}

		compiled, err := cascadia.Compile(f.expr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s selector %q", f.name, f.expr)
		}
		*f.matcher = compiled
	}

	return e, nil
}

// Extract pulls the recipe fields out of the parsed document. The image URL
// is resolved against the page URL when the page uses a relative src.
func (e *SelectorExtractor) Extract(doc *goquery.Document, pageURL *url.URL) (*recipe.Recipe, error) {
	rec := &recipe.Recipe{
		Ingredients: []string{},
		Steps:       []string{},
		SourceURL:   pageURL.String(),
	}

	if title := firstMatch(doc, e.title); title != nil {
		rec.Title = strings.TrimSpace(title.Text())
	}

	if desc := firstMatch(doc, e.description); desc != nil {
		text, err := fragmentText(desc, pageURL)
		if err != nil {
			return nil, err
		}
		rec.Description = text
	}

	if list := firstMatch(doc, e.ingredients); list != nil {
		rec.Ingredients = listItems(list)
	}

	if list := firstMatch(doc, e.steps); list != nil {
		rec.Steps = listItems(list)
	}

	if img := firstMatch(doc, e.image); img != nil {
		if src, ok := img.Attr("src"); ok {
			rec.ImageURL = resolveImageURL(pageURL, src)
		}
	}

	return rec, nil
}

// firstMatch returns the first element matching m, or nil when the matcher
// is unset or nothing matches.
func firstMatch(doc *goquery.Document, m goquery.Matcher) *goquery.Selection {
	if m == nil {
		return nil
	}

	sel := doc.FindMatcher(m).First()
	if sel.Length() == 0 {
		return nil
	}

	return sel
}

// fragmentText renders an HTML fragment to plain text by converting it to
// markdown, which collapses markup but keeps the paragraph text intact.
func fragmentText(sel *goquery.Selection, pageURL *url.URL) (string, error) {
	fragment, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", errors.Wrap(err, "failed to render description fragment")
	}

	text, err := htmltomarkdown.ConvertString(fragment, converter.WithDomain(pageURL.Host))
	if err != nil {
		return "", errors.Wrap(err, "failed to convert description fragment")
	}

	return strings.TrimSpace(text), nil
}

// listItems returns the trimmed text of each li under the container. Sites
// that don't mark up their lists with li elements fall back to one entry
// per non-empty text line.
func listItems(container *goquery.Selection) []string {
	items := []string{}

	lis := container.Find("li")
	if lis.Length() > 0 {
		lis.Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				items = append(items, text)
			}
		})
		return items
	}

	for _, line := range strings.Split(container.Text(), "\n") {
		if text := strings.TrimSpace(line); text != "" {
			items = append(items, text)
		}
	}

	return items
}

func resolveImageURL(pageURL *url.URL, src string) string {
	ref, err := url.Parse(strings.TrimSpace(src))
	if err != nil {
		return strings.TrimSpace(src)
	}

	return pageURL.ResolveReference(ref).String()
}
