package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Param is one name/value entry of a Params mapping. Values are stored as
// already-described strings (see DescribeValue).
type Param struct {
	Name  string
	Value string
}

// Params is an insertion-ordered name→value mapping used for recorded call
// parameters. Unlike a plain map it preserves the order the arguments were
// captured in, which both the console renderer and the exported JSON rely on.
type Params []Param

// Set appends a name/value pair, replacing the value in place when the name
// is already present. Returns the (possibly grown) mapping.
func (p Params) Set(name, value string) Params {
	for i := range p {
		if p[i].Name == name {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Name: name, Value: value})
}

// Get returns the value recorded under name and whether it was present.
func (p Params) Get(name string) (string, bool) {
	for _, kv := range p {
		if kv.Name == name {
			return kv.Value, true
		}
	}
	return "", false
}

// MarshalJSON encodes the mapping as a JSON object preserving insertion
// order. Keys and values are encoded with the standard library so escaping
// matches the rest of the event payload.
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(kv.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the mapping preserving the key
// order of the document.
func (p *Params) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("params: expected JSON object, got %v", tok)
	}

	out := Params{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("params: expected string key, got %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("params: value for %q: %w", key, err)
		}
		out = append(out, Param{Name: key, Value: value})
	}

	*p = out
	return nil
}
