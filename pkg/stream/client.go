//go:build js && wasm
// +build js,wasm

package stream

import (
	"log"
	"syscall/js"

	"github.com/recera/restyle/pkg/sheet"
)

// Client receives rule frames in the browser and reconciles them into a
// sheet.Manager.
type Client struct {
	ws      js.Value
	url     string
	manager *sheet.Manager
	onReady func()
}

// NewClient creates a client that applies received rules through manager.
func NewClient(url string, manager *sheet.Manager) *Client {
	return &Client{url: url, manager: manager}
}

// OnReady sets a handler invoked once the connection is open.
func (c *Client) OnReady(handler func()) {
	c.onReady = handler
}

// Connect opens the WebSocket and starts applying incoming rules.
func (c *Client) Connect() {
	c.ws = js.Global().Get("WebSocket").New(c.url)
	c.ws.Set("binaryType", "arraybuffer")

	c.ws.Set("onopen", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		log.Println("[Style Stream] Connected")
		if c.onReady != nil {
			c.onReady()
		}
		return nil
	}))

	c.ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		data := args[0].Get("data")
		buffer := js.Global().Get("Uint8Array").New(data)
		frame := make([]byte, buffer.Get("length").Int())
		js.CopyBytesToGo(frame, buffer)
		c.handleFrame(frame)
		return nil
	}))

	c.ws.Set("onclose", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		log.Println("[Style Stream] Disconnected")
		return nil
	}))
}

// Close closes the connection.
func (c *Client) Close() {
	if !c.ws.IsNull() && !c.ws.IsUndefined() {
		c.ws.Call("close")
	}
}

func (c *Client) handleFrame(frame []byte) {
	if len(frame) == 0 {
		return
	}

	switch FrameType(frame[0]) {
	case FrameRules:
		rules, err := DecodeRules(frame)
		if err != nil {
			log.Printf("[Style Stream] Failed to decode rules: %v", err)
			return
		}
		for _, r := range rules {
			c.manager.ApplyTo(r.Container, r.Selector, r.Declarations)
		}

	case FrameControl:
		// HELLO/PONG need no reaction
	}
}
