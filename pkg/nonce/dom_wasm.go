//go:build js && wasm
// +build js,wasm

package nonce

import "syscall/js"

// Browser returns a Source backed by the real page via syscall/js.
func Browser() Source {
	return &domSource{document: js.Global().Get("document")}
}

type domSource struct {
	document js.Value
}

func (d *domSource) TakeAttribute(selector, attr string) (string, bool) {
	el := d.document.Call("querySelector", selector)
	if el.IsNull() || el.IsUndefined() {
		return "", false
	}
	value := el.Call("getAttribute", attr)
	if value.IsNull() {
		return "", false
	}
	el.Call("removeAttribute", attr)
	return value.String(), true
}
