//go:build js && wasm
// +build js,wasm

package main

import (
	"syscall/js"

	"github.com/recera/restyle/pkg/nonce"
	"github.com/recera/restyle/pkg/sheet"
	"github.com/recera/restyle/pkg/stream"
)

var (
	document js.Value
	window   js.Value
	console  js.Value
)

func main() {
	document = js.Global().Get("document")
	window = js.Global().Get("window")
	console = js.Global().Get("console")

	console.Call("log", "🎨 Restyle client starting...")

	if document.Get("readyState").String() != "loading" {
		onReady()
	} else {
		document.Call("addEventListener", "DOMContentLoaded", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			onReady()
			return nil
		}))
	}

	// Keep the WASM runtime alive
	select {}
}

func onReady() {
	// Capture the CSP token before the first container is created so every
	// managed stylesheet carries it.
	registrar := nonce.NewRegistrar(nonce.Browser())
	registrar.Capture()

	manager := sheet.New(sheet.Browser(), sheet.WithTokenSource(registrar))

	// Expose the manager to page scripts: applyStyle(selector, declarations)
	js.Global().Set("applyStyle", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 2 {
			console.Call("error", "applyStyle(selector, declarations) expects two arguments")
			return nil
		}
		manager.Apply(args[0].String(), args[1].String())
		return nil
	}))

	// Stream rule updates from the dev server
	host := window.Get("location").Get("host").String()
	client := stream.NewClient("ws://"+host+"/restyle/live", manager)
	client.OnReady(func() {
		console.Call("log", "✅ Restyle stream connected")
	})
	client.Connect()

	console.Call("log", "✅ Restyle client initialized")
}
