package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Document is a package.json object with its top-level key order preserved.
// Values other than the ones being patched are kept as raw JSON.
type Document struct {
	root *object
}

// Parse decodes a package.json document. The top level must be a JSON object.
func Parse(data []byte) (*Document, error) {
	obj, err := parseObject(data)
	if err != nil {
		return nil, err
	}
	return &Document{root: obj}, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return doc, nil
}

// Save writes the document to path with two-space indentation.
func Save(path string, doc *Document) error {
	data, err := doc.Bytes()
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Bytes returns the indented JSON encoding, terminated by a newline.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	return append([]string(nil), d.root.keys...)
}

// String returns the top-level string value for key. ok is false when the key
// is absent or not a string.
func (d *Document) String(key string) (value string, ok bool) {
	raw, found := d.root.get(key)
	if !found {
		return "", false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// Script returns scripts.<name> when it is a string.
func (d *Document) Script(name string) (string, bool) {
	scripts, err := d.scripts()
	if err != nil {
		return "", false
	}
	raw, found := scripts.get(name)
	if !found {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// Raw returns the raw JSON of a top-level key.
func (d *Document) Raw(key string) (json.RawMessage, bool) {
	return d.root.get(key)
}

func (d *Document) setString(key, value string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	d.root.set(key, raw)
	return nil
}

// scripts returns the scripts object, empty when absent or null.
func (d *Document) scripts() (*object, error) {
	raw, found := d.root.get("scripts")
	if !found || isFalsy(raw) {
		return newObject(), nil
	}
	obj, err := parseObject(raw)
	if err != nil {
		return nil, fmt.Errorf("scripts: %w", err)
	}
	return obj, nil
}

func (d *Document) setScripts(obj *object) error {
	raw, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	d.root.set("scripts", raw)
	return nil
}

// object is a JSON object that remembers key order.
type object struct {
	keys   []string
	values map[string]json.RawMessage
}

func newObject() *object {
	return &object{values: make(map[string]json.RawMessage)}
}

// parseObject decodes a JSON object. A repeated key keeps its first position
// and its last value.
func parseObject(data []byte) (*object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object")
	}

	obj := newObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decoding %q: %w", key, err)
		}
		obj.set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level object")
	}
	return obj, nil
}

func (o *object) get(key string) (json.RawMessage, bool) {
	raw, ok := o.values[key]
	return raw, ok
}

func (o *object) set(key string, raw json.RawMessage) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
}

// MarshalJSON encodes the object in key order.
func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(o.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// isFalsy reports whether raw is null, false, 0 or the empty string.
func isFalsy(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == ""
	case float64:
		return val == 0
	default:
		return false
	}
}

func marshalString(s string) (json.RawMessage, error) {
	return json.Marshal(s)
}
