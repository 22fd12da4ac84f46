package region

import (
	"golang.org/x/net/html"
)

// Store caches node handles for one canvas so repeated description calls
// never re-query or re-create structure. Description regions hold a single
// leaf node; table regions hold one row node per sanitized element key.
//
// The store guarantees at most one handle per (region, key). Re-setting an
// existing slot overwrites the handle only; it never creates a second DOM
// node (scaffolding runs on cache miss alone). There is no eviction: entries
// live until the host discards the canvas.
//
// Store is not safe for concurrent use, matching the strictly sequential
// call contract of the describer.
type Store struct {
	fallbackDesc *html.Node
	labelDesc    *html.Node
	fallbackRows map[string]*html.Node
	labelRows    map[string]*html.Node
}

// NewStore returns an empty store. The zero value is also ready to use;
// row maps are initialized on first write.
func NewStore() *Store {
	return &Store{
		fallbackRows: make(map[string]*html.Node),
		labelRows:    make(map[string]*html.Node),
	}
}

// Get returns the cached node for (r, key) if present. The key is ignored
// for description regions.
func (s *Store) Get(r Region, key string) (*html.Node, bool) {
	switch r {
	case FallbackDescription:
		return s.fallbackDesc, s.fallbackDesc != nil
	case LabelDescription:
		return s.labelDesc, s.labelDesc != nil
	case FallbackTable:
		n, ok := s.fallbackRows[key]
		return n, ok
	case LabelTable:
		n, ok := s.labelRows[key]
		return n, ok
	}
	return nil, false
}

// Set records the node for (r, key), overwriting any existing handle. The
// key is ignored for description regions.
func (s *Store) Set(r Region, key string, n *html.Node) {
	switch r {
	case FallbackDescription:
		s.fallbackDesc = n
	case LabelDescription:
		s.labelDesc = n
	case FallbackTable:
		if s.fallbackRows == nil {
			s.fallbackRows = make(map[string]*html.Node)
		}
		s.fallbackRows[key] = n
	case LabelTable:
		if s.labelRows == nil {
			s.labelRows = make(map[string]*html.Node)
		}
		s.labelRows[key] = n
	}
}

// Len returns the number of cached handles, counting each row separately.
func (s *Store) Len() int {
	n := len(s.fallbackRows) + len(s.labelRows)
	if s.fallbackDesc != nil {
		n++
	}
	if s.labelDesc != nil {
		n++
	}
	return n
}
