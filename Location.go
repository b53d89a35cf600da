package pageurl

// Window is the source of the current page address.
// Implementations must return live values; the Service never caches them.
type Window interface {
	Pathname() string
	Search() string
	Hash() string
	Origin() string
}

// Location is a read-only snapshot of the current address.
type Location struct {
	Pathname string `json:"pathname"`
	Search   string `json:"search"`
	Hash     string `json:"hash"`
	Origin   string `json:"origin"`
}

// Href reassembles the full address.
func (loc Location) Href() string {
	return loc.Origin + loc.Pathname + loc.Search + loc.Hash
}
