//go:build js && wasm
// +build js,wasm

package sheet

import (
	"fmt"
	"syscall/js"
)

// Browser returns a Document backed by the real page via syscall/js.
func Browser() Document {
	return &domDocument{document: js.Global().Get("document")}
}

// domDocument adapts the browser document to the Document interface.
type domDocument struct {
	document js.Value
}

func (d *domDocument) LookupContainer(id string) (Container, bool) {
	el := d.document.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return &domContainer{id: id, el: el}, true
}

func (d *domDocument) CreateContainer(id, nonce string) Container {
	el := d.document.Call("createElement", "style")
	el.Call("setAttribute", "id", id)
	if nonce != "" {
		el.Call("setAttribute", "nonce", nonce)
	}
	d.document.Get("head").Call("appendChild", el)
	return &domContainer{id: id, el: el}
}

// domContainer wraps a <style> element and its CSSStyleSheet.
type domContainer struct {
	id string
	el js.Value
}

func (c *domContainer) ID() string { return c.id }

func (c *domContainer) sheet() js.Value { return c.el.Get("sheet") }

func (c *domContainer) RuleCount() int {
	return c.sheet().Get("cssRules").Get("length").Int()
}

func (c *domContainer) Selector(i int) string {
	rule := c.sheet().Get("cssRules").Call("item", i)
	if rule.IsNull() {
		return ""
	}
	return rule.Get("selectorText").String()
}

func (c *domContainer) PropertyNames(i int) []string {
	rule := c.sheet().Get("cssRules").Call("item", i)
	if rule.IsNull() {
		return nil
	}
	// A bounded scan over the declared indices; style.length covers exactly
	// the declared properties, values stay untouched.
	style := rule.Get("style")
	n := style.Get("length").Int()
	names := make([]string, 0, n)
	for j := 0; j < n; j++ {
		names = append(names, style.Call("item", j).String())
	}
	return names
}

func (c *domContainer) InsertRule(rule string, i int) (err error) {
	// insertRule throws on CSS the engine rejects; the rule is simply lost.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("insertRule rejected %q: %v", rule, r)
		}
	}()
	c.sheet().Call("insertRule", rule, i)
	return nil
}

func (c *domContainer) DeleteRule(i int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("deleteRule(%d): %v", i, r)
		}
	}()
	c.sheet().Call("deleteRule", i)
	return nil
}
