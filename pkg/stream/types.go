// Package stream carries style rules from a dev server to running clients
// over WebSocket, as compact binary frames. Received rules are reconciled
// into a managed stylesheet by pkg/sheet.
package stream

// FrameType identifies a protocol frame.
type FrameType uint8

const (
	// FrameRules carries a batch of style rules.
	FrameRules FrameType = 0x00
	// FrameControl carries a control message (HELLO, PING, PONG).
	FrameControl FrameType = 0x01
)

// Rule is one streamed style update. Container selects the managed style
// container; empty means the client's default.
type Rule struct {
	Container    string
	Selector     string
	Declarations string
}
