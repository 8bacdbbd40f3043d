package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mmcdole/bookfinder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const duneResponse = `{
  "numFound": 2,
  "docs": [
    {"key": "/works/OL1W", "title": "Dune", "author_name": ["Frank Herbert"], "cover_i": 42,
     "first_publish_year": 1965, "subject": ["Science fiction", "Deserts", "Politics", "Ecology"], "language": ["eng", "spa"]},
    {"key": "/works/OL2W", "title": "Dune Messiah"}
  ]
}`

type catalogServer struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
}

func (cs *catalogServer) Queries() []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return append([]string(nil), cs.queries...)
}

func newCatalogServer(t *testing.T, status int, body string) *catalogServer {
	t.Helper()
	cs := &catalogServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.mu.Lock()
		cs.queries = append(cs.queries, r.URL.RawQuery)
		cs.mu.Unlock()
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(cs.Close)
	return cs
}

// writeConfig points the catalog at baseURL and keeps all files in a temp dir
func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`catalog:
  base_url: %s
  covers_url: https://covers.openlibrary.org
storage:
  path: %s
logging:
  file: %s
  level: debug
`, baseURL, filepath.Join(dir, "bookfinder.db"), filepath.Join(dir, "bookfinder.log"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSearchCommand(t *testing.T) {
	server := newCatalogServer(t, http.StatusOK, duneResponse)
	cfg := writeConfig(t, server.URL)

	out, err := execute(t, "--config", cfg, "search", "dune", "messiah")
	require.NoError(t, err)

	assert.Equal(t, []string{"title=dune%20messiah"}, server.Queries())
	assert.Contains(t, out, " 1.   Dune (1965)")
	assert.Contains(t, out, "by Frank Herbert")
	assert.Contains(t, out, "Genres: Science fiction, Deserts, Politics\n")
	assert.Contains(t, out, "Languages: ENG, SPA")
	assert.Contains(t, out, "Cover: https://covers.openlibrary.org/b/id/42-M.jpg")
	assert.Contains(t, out, " 2.   Dune Messiah\n")
	assert.Contains(t, out, "by Unknown Author")
	assert.Contains(t, out, "No Cover Available")
	assert.Contains(t, out, "ID: _works_OL2W")
}

func TestSearchCommand_ModeAndJSON(t *testing.T) {
	server := newCatalogServer(t, http.StatusOK, duneResponse)
	cfg := writeConfig(t, server.URL)

	out, err := execute(t, "--config", cfg, "search", "--mode", "author", "--json", "frank herbert")
	require.NoError(t, err)

	assert.Equal(t, []string{"author=frank%20herbert"}, server.Queries())

	var books []domain.Book
	require.NoError(t, json.Unmarshal([]byte(out), &books))
	require.Len(t, books, 2)
	assert.Equal(t, "_works_OL1W", books[0].ID)
	assert.Equal(t, domain.NotAvailable, books[1].Subjects)
}

func TestSearchCommand_EmptyResult(t *testing.T) {
	server := newCatalogServer(t, http.StatusOK, `{"numFound": 0, "docs": []}`)
	cfg := writeConfig(t, server.URL)

	out, err := execute(t, "--config", cfg, "search", "zzzz")
	require.NoError(t, err)
	assert.Equal(t, "No books found for \"zzzz\". Try a different search.\n", out)
}

func TestSearchCommand_NetworkFailure(t *testing.T) {
	server := newCatalogServer(t, http.StatusInternalServerError, "oops")
	cfg := writeConfig(t, server.URL)

	_, err := execute(t, "--config", cfg, "search", "dune")
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch books. Please check your network connection.", err.Error())
}

func TestSearchCommand_BlankQuery(t *testing.T) {
	server := newCatalogServer(t, http.StatusOK, duneResponse)
	cfg := writeConfig(t, server.URL)

	_, err := execute(t, "--config", cfg, "search", "   ")
	require.Error(t, err)
	assert.Empty(t, server.Queries())
}

func TestFavoritesLifecycle(t *testing.T) {
	server := newCatalogServer(t, http.StatusOK, duneResponse)
	cfg := writeConfig(t, server.URL)

	out, err := execute(t, "--config", cfg, "favorites")
	require.NoError(t, err)
	assert.Equal(t, "No favorites yet!\n", out)

	out, err = execute(t, "--config", cfg, "search", "dune", "--favorite", "2")
	require.NoError(t, err)
	assert.Contains(t, out, " 2. ♥ Dune Messiah")

	// A fresh process sees the persisted favorite
	out, err = execute(t, "--config", cfg, "favorites")
	require.NoError(t, err)
	assert.Contains(t, out, " 1. ♥ Dune Messiah")
	assert.NotContains(t, out, "Dune (1965)")

	out, err = execute(t, "--config", cfg, "favorites", "--filter", "frank")
	require.NoError(t, err)
	assert.Equal(t, "No favorites match your filter.\n", out)

	out, err = execute(t, "--config", cfg, "favorites", "remove", "messiah")
	require.NoError(t, err)
	assert.Equal(t, "Removed Dune Messiah from favorites\n", out)

	_, err = execute(t, "--config", cfg, "favorites", "remove", "_works_OL2W")
	assert.Error(t, err)

	out, err = execute(t, "--config", cfg, "favorites", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestSearchCommand_FavoriteOutOfRange(t *testing.T) {
	server := newCatalogServer(t, http.StatusOK, duneResponse)
	cfg := writeConfig(t, server.URL)

	_, err := execute(t, "--config", cfg, "search", "dune", "--favorite", "3")
	assert.ErrorContains(t, err, "between 1 and 2")
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, err = execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+path+"\n", out)
	assert.FileExists(t, path)

	_, err = execute(t, "--config", path, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)
}
