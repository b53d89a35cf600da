//go:build js && wasm

package window

import (
	"syscall/js"
)

// Browser is a Window over the live window.location of the page
// running the wasm module.
type Browser struct{}

// NewBrowser returns the browser window.
func NewBrowser() Browser {
	return Browser{}
}

func location() js.Value {
	return js.Global().Get("location")
}

func (Browser) Pathname() string { return location().Get("pathname").String() }
func (Browser) Search() string   { return location().Get("search").String() }
func (Browser) Hash() string     { return location().Get("hash").String() }
func (Browser) Origin() string   { return location().Get("origin").String() }
