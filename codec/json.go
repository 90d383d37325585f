package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// NewJSON returns a [Codec] that encodes documents as a single JSON object.
//
// Key order is preserved on both marshal and unmarshal.
func NewJSON() Codec {
	return jsonCodec{}
}

// NewIndentedJSON returns a [Codec] that encodes documents as a single JSON
// object, indented for human editing.
func NewIndentedJSON(indent string) Codec {
	return jsonCodec{indent: indent}
}

// IsUnsupported returns true if err indicates that a value cannot be
// represented in the codec's output format.
func IsUnsupported(err error) bool {
	if errors.As(err, new(*json.UnsupportedTypeError)) {
		return true
	}

	return errors.As(err, new(*json.UnsupportedValueError))
}

type jsonCodec struct {
	indent string
}

func (c jsonCodec) Marshal(pairs []Pair) ([]byte, error) {
	var w bytes.Buffer
	w.WriteByte('{')

	for i, p := range pairs {
		if i > 0 {
			w.WriteByte(',')
		}

		k, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		w.Write(k)
		w.WriteByte(':')

		v, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("cannot marshal value of key %q: %w", p.Key, err)
		}
		w.Write(v)
	}

	w.WriteByte('}')

	if c.indent == "" {
		return w.Bytes(), nil
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, w.Bytes(), "", c.indent); err != nil {
		return nil, err
	}

	return indented.Bytes(), nil
}

func (c jsonCodec) Unmarshal(data []byte) ([]Pair, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected a JSON object, found %v", tok)
	}

	var pairs []Pair
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		// Within an object, every name token is a string.
		k := tok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("cannot unmarshal value of key %q: %w", k, err)
		}

		pairs = append(pairs, Pair{Key: k, Value: v})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after end of document")
	}

	return pairs, nil
}
