/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: directory_source.go
Description: Directory example source for the Akaylee Mocksmith. Scans a
directory for JSON example files, parsing each one and skipping malformed
files with a warning instead of aborting the whole corpus.
*/

package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// DirectorySource loads every *.json file in a directory as one example
// document each
type DirectorySource struct {
	Dir    string
	Logger *logrus.Logger
}

// NewDirectorySource creates a directory source
func NewDirectorySource(dir string, logger *logrus.Logger) *DirectorySource {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &DirectorySource{Dir: dir, Logger: logger}
}

func (s *DirectorySource) Name() string { return fmt.Sprintf("dir:%s", s.Dir) }

func (s *DirectorySource) Description() string {
	return "JSON example files from a local directory"
}

// FetchExamples parses every JSON file in the directory. A file that fails to
// parse is warned about and skipped; the rest of the corpus still loads.
func (s *DirectorySource) FetchExamples(ctx context.Context) ([]Document, error) {
	files, err := filepath.Glob(filepath.Join(s.Dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan example directory: %w", err)
	}

	var docs []Document
	for _, file := range files {
		select {
		case <-ctx.Done():
			return docs, ctx.Err()
		default:
		}

		data, err := os.ReadFile(file)
		if err != nil {
			s.Logger.WithFields(logrus.Fields{"file": file, "error": err}).Warn("Could not read example file")
			continue
		}

		var value interface{}
		if err := json.Unmarshal(data, &value); err != nil {
			s.Logger.WithFields(logrus.Fields{"file": file, "error": err}).Warn("Could not parse example file")
			continue
		}

		docs = append(docs, Document{Source: file, Value: value})
	}

	return docs, nil
}
