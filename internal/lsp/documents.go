package lsp

import (
	"strings"
	"sync"
)

// DocumentKind distinguishes the two document types the server handles.
type DocumentKind int

const (
	// KindTheme is a VS Code color theme (JSON with comments).
	KindTheme DocumentKind = iota
	// KindManifest is an HCL family manifest.
	KindManifest
)

func (k DocumentKind) String() string {
	if k == KindManifest {
		return "manifest"
	}
	return "theme"
}

// kindOf classifies a document by its URI. Manifests use the .hcl extension;
// everything else is treated as a theme.
func kindOf(uri string) DocumentKind {
	if strings.HasSuffix(strings.ToLower(uri), ".hcl") {
		return KindManifest
	}
	return KindTheme
}

// Document is an open document with the analysis of its current content.
// Documents are replaced, never mutated, so a *Document returned by the
// store is safe to read without locking.
type Document struct {
	URI      string
	Kind     DocumentKind
	Content  string
	Analysis *AnalysisResult // nil for manifests
}

func newDocumentFor(uri string, kind DocumentKind, content string) *Document {
	doc := &Document{URI: uri, Kind: kind, Content: content}
	if kind == KindTheme {
		doc.Analysis = Analyze(content)
	}
	return doc
}

// DocumentStore holds open documents keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Open records a new document, classifying it by URI and analyzing themes.
func (s *DocumentStore) Open(uri, content string) *Document {
	doc := newDocumentFor(uri, kindOf(uri), content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = doc
	return doc
}

// Update replaces the content of a document, keeping the kind recorded at
// Open. Unknown URIs are opened.
func (s *DocumentStore) Update(uri, content string) *Document {
	s.mu.RLock()
	prev, ok := s.docs[uri]
	s.mu.RUnlock()

	kind := kindOf(uri)
	if ok {
		kind = prev.Kind
	}
	doc := newDocumentFor(uri, kind, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = doc
	return doc
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc, ok
}
