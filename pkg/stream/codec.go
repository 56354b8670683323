package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Encoder writes protocol primitives to a stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder creates a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// WriteUvarint writes an unsigned varint.
func (e *Encoder) WriteUvarint(v uint64) error {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, v)
	_, err := e.w.Write(buf[:n])
	return err
}

// WriteString writes a length-prefixed string.
func (e *Encoder) WriteString(s string) error {
	if err := e.WriteUvarint(uint64(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

// WriteByte writes a single byte.
func (e *Encoder) WriteByte(b byte) error {
	_, err := e.w.Write([]byte{b})
	return err
}

// Decoder reads protocol primitives from a stream.
type Decoder struct {
	r   io.Reader
	buf []byte
}

// NewDecoder creates a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, buf: make([]byte, 256)}
}

// ReadUvarint reads an unsigned varint.
func (d *Decoder) ReadUvarint() (uint64, error) {
	return binary.ReadUvarint(d)
}

// ReadByte implements io.ByteReader.
func (d *Decoder) ReadByte() (byte, error) {
	var b [1]byte
	_, err := io.ReadFull(d.r, b[:])
	return b[0], err
}

// ReadString reads a length-prefixed string.
func (d *Decoder) ReadString() (string, error) {
	length, err := d.ReadUvarint()
	if err != nil {
		return "", err
	}
	if length > uint64(len(d.buf)) {
		d.buf = make([]byte, length)
	}
	n, err := io.ReadFull(d.r, d.buf[:length])
	if err != nil {
		return "", err
	}
	return string(d.buf[:n]), nil
}

// EncodeRules encodes a batch of rules into a FrameRules frame.
func EncodeRules(rules []Rule) []byte {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	enc.WriteByte(byte(FrameRules))
	enc.WriteUvarint(uint64(len(rules)))
	for _, r := range rules {
		enc.WriteString(r.Container)
		enc.WriteString(r.Selector)
		enc.WriteString(r.Declarations)
	}

	return buf.Bytes()
}

// DecodeRules decodes a FrameRules frame.
func DecodeRules(data []byte) ([]Rule, error) {
	if len(data) == 0 {
		return nil, errors.New("empty frame")
	}
	if data[0] != byte(FrameRules) {
		return nil, fmt.Errorf("not a rules frame: 0x%02x", data[0])
	}

	dec := NewDecoder(bytes.NewReader(data[1:]))
	count, err := dec.ReadUvarint()
	if err != nil {
		return nil, fmt.Errorf("failed to decode rule count: %w", err)
	}

	rules := make([]Rule, 0, count)
	for i := uint64(0); i < count; i++ {
		var r Rule
		if r.Container, err = dec.ReadString(); err != nil {
			return nil, fmt.Errorf("failed to decode rule %d: %w", i, err)
		}
		if r.Selector, err = dec.ReadString(); err != nil {
			return nil, fmt.Errorf("failed to decode rule %d: %w", i, err)
		}
		if r.Declarations, err = dec.ReadString(); err != nil {
			return nil, fmt.Errorf("failed to decode rule %d: %w", i, err)
		}
		rules = append(rules, r)
	}

	return rules, nil
}

// EncodeControl encodes a control message frame.
func EncodeControl(msg string) []byte {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	enc.WriteByte(byte(FrameControl))
	enc.WriteString(msg)
	return buf.Bytes()
}

// DecodeControl decodes a control message frame.
func DecodeControl(data []byte) (string, error) {
	if len(data) == 0 || data[0] != byte(FrameControl) {
		return "", errors.New("not a control frame")
	}
	dec := NewDecoder(bytes.NewReader(data[1:]))
	return dec.ReadString()
}
