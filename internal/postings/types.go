// Package postings defines the on-disk and in-memory record types shared by
// the build, merge, split and search stages: postings, posting lists, and
// token entries.
package postings

// TagKind identifies the structural HTML region a token occurrence was
// found in. The set is closed and dense so tag frequencies can be carried
// as a small fixed-size array instead of a general map once decoded.
type TagKind uint8

const (
	TagBody TagKind = iota
	TagTitle
	TagH1
	TagH2
	TagH3
	TagH4
	TagH5
	TagH6
	TagBold
	TagStrong

	numTagKinds
)

// NumTagKinds is the size of the closed tag enumeration.
const NumTagKinds = int(numTagKinds)

// String renders the tag kind for logging and diagnostics.
func (t TagKind) String() string {
	switch t {
	case TagBody:
		return "body"
	case TagTitle:
		return "title"
	case TagH1:
		return "h1"
	case TagH2:
		return "h2"
	case TagH3:
		return "h3"
	case TagH4:
		return "h4"
	case TagH5:
		return "h5"
	case TagH6:
		return "h6"
	case TagBold:
		return "b"
	case TagStrong:
		return "strong"
	default:
		return "unknown"
	}
}

// Posting records a single token's occurrence in a document: how many
// times it occurred, and the breakdown per structural tag.
type Posting struct {
	DocID          uint32
	Frequency      uint32
	TagFrequencies [NumTagKinds]uint32
}

// TotalTagFrequency sums the per-tag breakdown, for comparison against
// Frequency.
func (p Posting) TotalTagFrequency() uint32 {
	var total uint32
	for _, c := range p.TagFrequencies {
		total += c
	}
	return total
}

// PostingList is the sequence of postings for a single token. After a
// merge it MUST be strictly ascending by DocID with no duplicates.
type PostingList []Posting

// IsSorted reports whether the list satisfies the strictly-ascending,
// no-duplicate-doc_id invariant.
func (pl PostingList) IsSorted() bool {
	for i := 1; i < len(pl); i++ {
		if pl[i-1].DocID >= pl[i].DocID {
			return false
		}
	}
	return true
}

// TokenEntry is the serialized unit for one token: its document frequency
// (always equal to len(Postings)) plus the posting list itself.
type TokenEntry struct {
	DF       uint32
	Postings PostingList
}

// Valid reports whether the invariant df == len(postings) holds and the
// posting list is well-formed.
func (e TokenEntry) Valid() bool {
	return int(e.DF) == len(e.Postings) && e.Postings.IsSorted()
}
