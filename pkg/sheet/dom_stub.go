//go:build !js || !wasm
// +build !js !wasm

package sheet

// Browser returns a Document for non-WASM builds. There is no page to attach
// to, so shared client code gets an in-memory document; server-side renders
// can snapshot it with MemoryContainer.CSSText.
func Browser() Document {
	return NewMemoryDocument()
}
