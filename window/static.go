package window

import (
	"sync"

	"github.com/rohanthewiz/pageurl"
)

// Static is a Window holding a fixed address that can be replaced with Navigate.
// It is the test double for code that reads the page URL, and the window the
// CLI and inspector API use for an href given as input.
type Static struct {
	mu  sync.RWMutex
	loc pageurl.Location
}

// New creates a Static window at the given location.
func New(loc pageurl.Location) *Static {
	return &Static{loc: loc}
}

// Parse creates a Static window at href.
func Parse(href string) *Static {
	return New(ParseLocation(href))
}

// ParseLocation splits href into a Location.
func ParseLocation(href string) pageurl.Location {
	scheme, host, pathname, search, hash := splitHref(href)
	return pageurl.Location{
		Pathname: pathname,
		Search:   search,
		Hash:     hash,
		Origin:   origin(scheme, host),
	}
}

// Navigate moves the window to href.
func (w *Static) Navigate(href string) {
	w.Set(ParseLocation(href))
}

// Set replaces the whole location.
func (w *Static) Set(loc pageurl.Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.loc = loc
}

func (w *Static) location() pageurl.Location {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.loc
}

func (w *Static) Pathname() string { return w.location().Pathname }
func (w *Static) Search() string   { return w.location().Search }
func (w *Static) Hash() string     { return w.location().Hash }
func (w *Static) Origin() string   { return w.location().Origin }
