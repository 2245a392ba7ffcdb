package postings

import (
	"github.com/RoaringBitmap/roaring"
)

// DocBitmapSet tracks, per token, a compressed bitmap of the document ids
// that contain it. It mirrors the teacher index's hybrid storage idea
// (a roaring.Bitmap alongside the positional data) and offers a cheap
// candidate-document prefilter: membership checks per (token, doc_id) and
// unions of candidate sets across tokens. No other package in this
// repository calls it.
type DocBitmapSet struct {
	byToken map[string]*roaring.Bitmap
}

// NewDocBitmapSet creates an empty set.
func NewDocBitmapSet() *DocBitmapSet {
	return &DocBitmapSet{byToken: make(map[string]*roaring.Bitmap)}
}

// Add records that docID contains token.
func (s *DocBitmapSet) Add(token string, docID uint32) {
	bm, ok := s.byToken[token]
	if !ok {
		bm = roaring.NewBitmap()
		s.byToken[token] = bm
	}
	bm.Add(docID)
}

// Contains reports whether docID was previously recorded for token.
func (s *DocBitmapSet) Contains(token string, docID uint32) bool {
	bm, ok := s.byToken[token]
	return ok && bm.Contains(docID)
}

// Cardinality returns the document frequency implied by the bitmap for
// token, i.e. the number of distinct documents recorded.
func (s *DocBitmapSet) Cardinality(token string) uint64 {
	bm, ok := s.byToken[token]
	if !ok {
		return 0
	}
	return bm.GetCardinality()
}

// Union returns the set of doc ids that contain at least one of tokens.
func (s *DocBitmapSet) Union(tokens []string) *roaring.Bitmap {
	result := roaring.NewBitmap()
	for _, token := range tokens {
		if bm, ok := s.byToken[token]; ok {
			result.Or(bm)
		}
	}
	return result
}

// Clear discards all recorded bitmaps.
func (s *DocBitmapSet) Clear() {
	s.byToken = make(map[string]*roaring.Bitmap)
}
