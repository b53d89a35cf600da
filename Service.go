package pageurl

// Service answers routing questions about the current page address.
// Every call re-reads the Window, so a Service is safe to share.
type Service struct {
	win Window
}

// New creates a Service reading from the given window.
func New(win Window) *Service {
	return &Service{win: win}
}

// CurrentLocation returns a fresh snapshot of the window's address.
func (s *Service) CurrentLocation() Location {
	return Location{
		Pathname: s.win.Pathname(),
		Search:   s.win.Search(),
		Hash:     s.win.Hash(),
		Origin:   s.win.Origin(),
	}
}

// Pathname returns the current path, with its leading slash.
func (s *Service) Pathname() string {
	return s.CurrentLocation().Pathname
}

// Search returns the current query string, including the leading '?' when present.
func (s *Service) Search() string {
	return s.CurrentLocation().Search
}

// Hash returns the current fragment, including the leading '#' when present.
func (s *Service) Hash() string {
	return s.CurrentLocation().Hash
}

// Origin returns the scheme, host and port of the current address.
func (s *Service) Origin() string {
	return s.CurrentLocation().Origin
}
