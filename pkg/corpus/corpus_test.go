/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: corpus_test.go
Description: Unit tests for corpus management. Tests fingerprint stability
under key ordering, entity filtering, directory loading with malformed-file
skipping, dataset fetching, and documentation page scraping.
*/

package corpus_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kleascm/akaylee-mocksmith/pkg/corpus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestFingerprintStableUnderKeyOrder(t *testing.T) {
	// Insertion order differs; the serialized form must not
	a := map[string]interface{}{}
	a["name"] = "Alice"
	a["age"] = float64(25)
	b := map[string]interface{}{}
	b["age"] = float64(25)
	b["name"] = "Alice"

	fpA, err := corpus.Fingerprint([]interface{}{a})
	require.NoError(t, err)
	fpB, err := corpus.Fingerprint([]interface{}{b})
	require.NoError(t, err)

	assert.Equal(t, fpA, fpB)
}

func TestFingerprintSensitiveToContent(t *testing.T) {
	fpA, err := corpus.Fingerprint([]interface{}{map[string]interface{}{"a": float64(1)}})
	require.NoError(t, err)
	fpB, err := corpus.Fingerprint([]interface{}{map[string]interface{}{"a": float64(2)}})
	require.NoError(t, err)

	assert.NotEqual(t, fpA, fpB)
}

func TestFingerprintSensitiveToDocumentOrder(t *testing.T) {
	x := map[string]interface{}{"a": float64(1)}
	y := map[string]interface{}{"b": float64(2)}

	fpXY, err := corpus.Fingerprint([]interface{}{x, y})
	require.NoError(t, err)
	fpYX, err := corpus.Fingerprint([]interface{}{y, x})
	require.NoError(t, err)

	assert.NotEqual(t, fpXY, fpYX)
}

func TestFilterByEntity(t *testing.T) {
	c := corpus.New()
	c.Add("a", map[string]interface{}{"entity": "person", "name": "Alice"})
	c.Add("b", map[string]interface{}{"entity": "invoice", "total": float64(10)})
	c.Add("c", map[string]interface{}{"name": "no entity key"})
	c.Add("d", "not an object")

	filtered := c.FilterByEntity("entity", "person")
	require.Equal(t, 1, filtered.Len())
	assert.Equal(t, "a", filtered.Documents()[0].Source)
}

func TestDirectorySourceSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.json"), []byte(`{"name":"Alice"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{not json`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte(`{"x":1}`), 0644))

	source := corpus.NewDirectorySource(dir, quietLogger())
	docs, err := source.FetchExamples(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 1)
	obj, ok := docs[0].Value.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Alice", obj["name"])
}

func TestLoadSkipsFailingSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.json"), []byte(`{"ok":true}`), 0644))

	good := corpus.NewDirectorySource(dir, quietLogger())
	bad := corpus.NewDatasetSource("missing", filepath.Join(dir, "does-not-exist.json"), time.Second)

	c := corpus.Load(context.Background(), quietLogger(), bad, good)
	assert.Equal(t, 1, c.Len())
}

func TestDatasetSourceSplitsArrays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":"a"},{"id":"b"},{"id":"a"}]`)
	}))
	defer server.Close()

	source := corpus.NewDatasetSource("test", server.URL, 5*time.Second)
	docs, err := source.FetchExamples(context.Background())
	require.NoError(t, err)

	// Three elements, one duplicate by content
	assert.Len(t, docs, 2)
}

func TestDatasetSourceSingleObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"a"}`)
	}))
	defer server.Close()

	source := corpus.NewDatasetSource("test", server.URL, 5*time.Second)
	docs, err := source.FetchExamples(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestDatasetSourceLocalFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "dataset.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"id":"x"}]`), 0644))

	source := corpus.NewDatasetSource("local", file, time.Second)
	docs, err := source.FetchExamples(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestDatasetSourceErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source := corpus.NewDatasetSource("failing", server.URL, 5*time.Second)
	_, err := source.FetchExamples(context.Background())
	assert.Error(t, err)
}

func TestDocSourceScrapesCodeBlocks(t *testing.T) {
	page := `<html><body>
		<p>Example response:</p>
		<pre>{"status": "active", "amount": 10.5}</pre>
		<code>{"status": "pending"}</code>
		<pre>not json at all</pre>
		<code>GET /api/v1/users</code>
		<pre>{"status": "active", "amount": 10.5}</pre>
	</body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	source := corpus.NewDocSource("docs", server.URL, false, 5*time.Second, quietLogger())
	docs, err := source.FetchExamples(context.Background())
	require.NoError(t, err)

	// Two unique JSON blocks; the duplicate pre and the non-JSON text are dropped
	require.Len(t, docs, 2)
	first, ok := docs[0].Value.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "active", first["status"])
}
