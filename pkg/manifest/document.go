package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf16"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// VersionKey is the only manifest field ccsync interprets
const VersionKey = "version"

// Document is a manifest JSON object with its top-level key order preserved.
// Values are kept as raw JSON so fields ccsync does not touch are written
// back with their numbers, nested key order and escapes intact.
type Document struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// Parse decodes a manifest. The top-level value must be a JSON object.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("manifest must be a JSON object, got %v", tok)
	}

	fields := orderedmap.New[string, json.RawMessage]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		fields.Set(key, raw)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after the manifest object")
	}

	return &Document{fields: fields}, nil
}

// Version returns the decoded version value and whether it is present
func (d *Document) Version() (any, bool) {
	return d.Get(VersionKey)
}

// SetVersion sets the version, keeping its position when already present
func (d *Document) SetVersion(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	d.SetRaw(VersionKey, raw)
	return nil
}

// Get returns a top-level field decoded into a Go value
func (d *Document) Get(key string) (any, bool) {
	raw, ok := d.fields.Get(key)
	if !ok {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	return v, true
}

// Raw returns a top-level field as it appeared in the document
func (d *Document) Raw(key string) (json.RawMessage, bool) {
	return d.fields.Get(key)
}

// SetRaw sets a top-level field from raw JSON
func (d *Document) SetRaw(key string, raw json.RawMessage) {
	d.fields.Set(key, raw)
}

// Keys returns the top-level keys in document order
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.fields.Len())
	for pair := d.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Marshal encodes the document with two-space indentation and no trailing
// newline. Non-ASCII characters are written as \u escapes.
func (d *Document) Marshal() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for pair := d.fields.Oldest(); pair != nil; pair = pair.Next() {
		if compact.Len() > 1 {
			compact.WriteByte(',')
		}
		key, err := encodeString(pair.Key)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(pair.Value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return escapeNonASCII(out.Bytes()), nil
}

func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// escapeNonASCII rewrites every non-ASCII rune as a \u escape, using a
// surrogate pair above the BMP. In valid JSON such runes only occur inside
// strings.
func escapeNonASCII(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))
	for _, r := range string(data) {
		switch {
		case r < 0x80:
			out.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&out, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&out, `\u%04x`, r)
		}
	}
	return out.Bytes()
}
