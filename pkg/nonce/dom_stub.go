//go:build !js || !wasm
// +build !js !wasm

package nonce

// Browser returns a Source for non-WASM builds. There is no page, so it never
// yields a token.
func Browser() Source {
	return emptySource{}
}

type emptySource struct{}

func (emptySource) TakeAttribute(selector, attr string) (string, bool) {
	return "", false
}
