package wordlist

import "context"

// Request identifies one page of the remote word list.
type Request struct {
	Level    string
	Language string

	// Offset is nil for the discovery request.
	Offset *int
}

// OffsetOrZero returns the requested offset, or 0 for the discovery request.
func (r Request) OffsetOrZero() int {
	if r.Offset == nil {
		return 0
	}
	return *r.Offset
}

// At returns a copy of r requesting the page that starts at offset.
func (r Request) At(offset int) Request {
	r.Offset = &offset
	return r
}

// Page is one decoded page of the word list.
type Page struct {
	// Total is the size of the whole list as declared by the service.
	Total int

	// Words holds the bare form of each entry in service order.
	Words []string
}

// Source fetches pages of the word list.
type Source interface {
	FetchPage(ctx context.Context, req Request) (*Page, error)
}
