package recipe

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Recipe is the structured record extracted from one scraped page. It is
// built once by a site extractor and serialized immediately afterwards;
// fields the page doesn't provide stay empty.
type Recipe struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	// ImageURL is resolved to an absolute URL against the page it was found on.
	ImageURL string `json:"image_url"`
	// SourceURL is the page the recipe was scraped from.
	SourceURL string `json:"source_url"`
}

var fileNameSanitizer = regexp.MustCompile(`[\/\\:\*\?"<>\|\p{C}]`)

// FileName derives the output file name from the recipe title. Characters
// that are unsafe in file names are replaced, and a recipe without a title
// falls back to a fixed name.
func (r *Recipe) FileName() string {
	title := strings.Trim(fileNameSanitizer.ReplaceAllString(r.Title, "-"), " .")
	if title == "" {
		return "recipe.json"
	}

	return "recipe_" + title + ".json"
}

// MarshalPretty serializes the recipe as indented JSON.
func (r *Recipe) MarshalPretty() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
