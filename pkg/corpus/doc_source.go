/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: doc_source.go
Description: Documentation page example source for the Akaylee Mocksmith.
Scrapes JSON example documents out of pre/code blocks on an API documentation
page, with optional headless-Chrome rendering for script-driven pages.
*/

package corpus

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

// DocSource extracts example JSON documents from the pre and code blocks of
// an HTML documentation page. Rendered mode drives a headless browser first,
// for pages that only materialize their examples via script.
type DocSource struct {
	NameStr  string
	URL      string
	Rendered bool
	Timeout  time.Duration
	Logger   *logrus.Logger
}

// NewDocSource creates a new DocSource
func NewDocSource(name, url string, rendered bool, timeout time.Duration, logger *logrus.Logger) *DocSource {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &DocSource{NameStr: name, URL: url, Rendered: rendered, Timeout: timeout, Logger: logger}
}

func (s *DocSource) Name() string { return s.NameStr }

func (s *DocSource) Description() string {
	return "JSON examples scraped from an HTML documentation page"
}

// FetchExamples loads the page and collects every pre/code block whose text
// parses as a JSON document, deduplicated by content hash
func (s *DocSource) FetchExamples(ctx context.Context) ([]Document, error) {
	var doc *goquery.Document
	var err error

	if s.Rendered {
		doc, err = s.renderedDocument(ctx)
	} else {
		doc, err = s.staticDocument(ctx)
	}
	if err != nil {
		return nil, err
	}

	var docs []Document
	seen := make(map[string]struct{})

	doc.Find("pre, code").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) == 0 {
			return
		}
		if text[0] != '{' && text[0] != '[' {
			return
		}

		var value interface{}
		if err := json.Unmarshal([]byte(text), &value); err != nil {
			return
		}

		hash := fmt.Sprintf("%x", sha256.Sum256([]byte(text)))
		if _, dup := seen[hash]; dup {
			return
		}
		seen[hash] = struct{}{}

		docs = append(docs, Document{Source: s.URL, Value: value})
	})

	s.Logger.WithFields(logrus.Fields{
		"url":      s.URL,
		"examples": len(docs),
		"rendered": s.Rendered,
	}).Debug("Documentation page scraped")

	return docs, nil
}

// staticDocument fetches the page over plain HTTP
func (s *DocSource) staticDocument(ctx context.Context) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build page request: %w", err)
	}
	client := &http.Client{Timeout: s.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documentation page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("documentation page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse documentation page: %w", err)
	}
	return doc, nil
}

// renderedDocument drives headless Chrome to capture the page after scripts
// have run, then parses the resulting DOM
func (s *DocSource) renderedDocument(ctx context.Context) (*goquery.Document, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer allocCancel()
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	if s.Timeout > 0 {
		var timeoutCancel context.CancelFunc
		browserCtx, timeoutCancel = context.WithTimeout(browserCtx, s.Timeout)
		defer timeoutCancel()
	}

	chromedp.ListenTarget(browserCtx, func(ev interface{}) {
		if e, ok := ev.(*network.EventLoadingFailed); ok {
			s.Logger.WithFields(logrus.Fields{
				"url":   s.URL,
				"error": e.ErrorText,
			}).Debug("Subresource failed to load during rendering")
		}
	})

	var html string
	err := chromedp.Run(browserCtx,
		network.Enable(),
		chromedp.Navigate(s.URL),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render documentation page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered page: %w", err)
	}
	return doc, nil
}
