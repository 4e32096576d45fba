package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mberetvas/FoodScraper/fetch"
	"github.com/mberetvas/FoodScraper/recipe"
	"github.com/mberetvas/FoodScraper/scrape"
	"github.com/mberetvas/FoodScraper/store"
)

const fixturePage = `<!DOCTYPE html>
<html><body>
<h1 class="recipe-title">Pannenkoeken</h1>
<div class="recipe-intro"><p>Zondagse pannenkoeken zoals bij oma.</p></div>
<figure class="recipe-image"><img src="/images/pannenkoeken.jpg"></figure>
<div class="recipe-ingredients"><ul>
<li>200 g bloem</li>
<li>2 eieren</li>
<li>500 ml melk</li>
</ul></div>
<div class="recipe-preparation"><ol>
<li>Meng bloem, eieren en melk tot een glad beslag.</li>
<li>Bak de pannenkoeken goudbruin.</li>
</ol></div>
</body></html>`

func testPipeline(t *testing.T, srvHost string, outDir string) *Pipeline {
	t.Helper()

	extractor, err := scrape.NewSelectorExtractor(scrape.DefaultSites()["15gram.be"])
	require.NoError(t, err)

	registry := scrape.NewRegistry()
	registry.Register(srvHost, extractor)

	return New(fetch.NewFetcher(5*time.Second), registry, store.NewFileStore(outDir))
}

func TestRunWritesRecipeFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixturePage))
	}))
	defer srv.Close()

	u, err := fetch.ParseURL(srv.URL)
	require.NoError(t, err)

	outDir := t.TempDir()
	p := testPipeline(t, u.Hostname(), outDir)

	path, err := p.Run(context.Background(), srv.URL+"/recepten/pannenkoeken")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec recipe.Recipe
	require.NoError(t, json.Unmarshal(raw, &rec))

	require.Equal(t, "Pannenkoeken", rec.Title)
	require.Equal(t, "Zondagse pannenkoeken zoals bij oma.", rec.Description)
	require.Equal(t, []string{"200 g bloem", "2 eieren", "500 ml melk"}, rec.Ingredients)
	require.Len(t, rec.Steps, 2)
	require.Equal(t, srv.URL+"/images/pannenkoeken.jpg", rec.ImageURL)
	require.Equal(t, srv.URL+"/recepten/pannenkoeken", rec.SourceURL)
}

func TestRunUnsupportedSiteSkipsNetwork(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	u, err := fetch.ParseURL(srv.URL)
	require.NoError(t, err)

	p := testPipeline(t, u.Hostname(), t.TempDir())

	// The registry only knows the test server's host.
	_, err = p.Run(context.Background(), "https://example.com/recipes/1")
	require.ErrorContains(t, err, "unsupported site")
	require.Zero(t, requests)
}

func TestRunNetworkFailureWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	u, err := fetch.ParseURL(srv.URL)
	require.NoError(t, err)

	outDir := t.TempDir()
	p := testPipeline(t, u.Hostname(), outDir)

	srv.Close()

	_, err = p.Run(context.Background(), srv.URL+"/recepten/pannenkoeken")
	require.Error(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRunErrorStatusWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	u, err := fetch.ParseURL(srv.URL)
	require.NoError(t, err)

	outDir := t.TempDir()
	p := testPipeline(t, u.Hostname(), outDir)

	_, err = p.Run(context.Background(), srv.URL+"/recepten/weg")
	require.Error(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRunInvalidURL(t *testing.T) {
	p := testPipeline(t, "15gram.be", t.TempDir())

	_, err := p.Run(context.Background(), "ftp://15gram.be/recepten")
	require.Error(t, err)
}
