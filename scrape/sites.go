package scrape

// DefaultSites returns the compiled-in selector sets for the supported
// recipe sites, keyed by host. Entries can be patched or extended through
// the selector config file without rebuilding.
func DefaultSites() map[string]Selectors {
	return map[string]Selectors{
		"15gram.be": {
			Title:       "h1.recipe-title",
			Description: "div.recipe-intro",
			Ingredients: "div.recipe-ingredients ul",
			Steps:       "div.recipe-preparation ol",
			Image:       "figure.recipe-image img",
		},
		"dagelijksekost.vrt.be": {
			Title:       "h1.content-title",
			Description: "div.recipe-description",
			Ingredients: "ul.ingredients-list",
			Steps:       "div.preparation ol",
			Image:       "div.media img",
		},
	}
}

// NewDefaultRegistry builds a registry from a selector-set map, one
// SelectorExtractor per site.
func NewDefaultRegistry(sites map[string]Selectors) (*Registry, error) {
	registry := NewRegistry()

	for host, selectors := range sites {
		extractor, err := NewSelectorExtractor(selectors)
		if err != nil {
			return nil, err
		}
		registry.Register(host, extractor)
	}

	return registry, nil
}
