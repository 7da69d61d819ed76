/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dataset_source.go
Description: Dataset example source for the Akaylee Mocksmith. Fetches a JSON
dataset over HTTP/HTTPS or from a local file, splitting top-level arrays into
individual example documents and deduplicating by content hash.
*/

package corpus

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// DatasetSource fetches example documents from a JSON dataset (HTTP, HTTPS,
// or local file). A top-level array yields one document per element; anything
// else yields a single document.
type DatasetSource struct {
	NameStr string
	URL     string
	Timeout time.Duration

	mu    sync.Mutex
	dedup map[string]struct{}
}

// NewDatasetSource creates a new DatasetSource
func NewDatasetSource(name, url string, timeout time.Duration) *DatasetSource {
	return &DatasetSource{
		NameStr: name,
		URL:     url,
		Timeout: timeout,
		dedup:   make(map[string]struct{}),
	}
}

func (s *DatasetSource) Name() string { return s.NameStr }

func (s *DatasetSource) Description() string {
	return "JSON example documents from a dataset URL or file"
}

// FetchExamples downloads and parses the dataset, returning unique documents
func (s *DatasetSource) FetchExamples(ctx context.Context) ([]Document, error) {
	var reader io.Reader
	var closer io.Closer

	if strings.HasPrefix(s.URL, "http://") || strings.HasPrefix(s.URL, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build dataset request: %w", err)
		}
		client := &http.Client{Timeout: s.Timeout}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dataset: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("dataset returned status %d", resp.StatusCode)
		}
		reader = resp.Body
		closer = resp.Body
	} else {
		file, err := os.Open(s.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset file: %w", err)
		}
		reader = file
		closer = file
	}
	defer closer.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var parsed interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	var docs []Document
	if list, ok := parsed.([]interface{}); ok {
		for _, element := range list {
			if s.unseen(element) {
				docs = append(docs, Document{Source: s.URL, Value: element})
			}
		}
	} else if s.unseen(parsed) {
		docs = append(docs, Document{Source: s.URL, Value: parsed})
	}

	return docs, nil
}

// unseen records the document's content hash, reporting whether it is new
func (s *DatasetSource) unseen(value interface{}) bool {
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}
	hash := fmt.Sprintf("%x", sha256.Sum256(data))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.dedup[hash]; seen {
		return false
	}
	s.dedup[hash] = struct{}{}
	return true
}
