// Package codec provides serialization of whole map documents.
package codec

// A Pair is a single key/value entry within a document.
//
// Values are limited to the JSON-like value model: nil, bool, float64,
// string, []any and map[string]any. Whether a value outside that model can
// be represented is decided by the codec at marshaling time.
type Pair struct {
	Key   string
	Value any
}

// A Codec marshals and unmarshals an entire map document.
//
// The pairs are presented in the map's key-insertion order; a codec that
// can represent ordering must preserve it.
type Codec interface {
	// Marshal encodes the given pairs as a single document.
	Marshal(pairs []Pair) ([]byte, error)

	// Unmarshal decodes a document produced by [Codec.Marshal].
	//
	// The entire input must form exactly one document; trailing data is an
	// error.
	Unmarshal(data []byte) ([]Pair, error)
}

// New returns a new [Codec] that marshals and unmarshals documents using the
// given functions.
func New(
	marshal func([]Pair) ([]byte, error),
	unmarshal func([]byte) ([]Pair, error),
) Codec {
	return codec{marshal, unmarshal}
}

type codec struct {
	marshal   func([]Pair) ([]byte, error)
	unmarshal func([]byte) ([]Pair, error)
}

func (c codec) Marshal(pairs []Pair) ([]byte, error)  { return c.marshal(pairs) }
func (c codec) Unmarshal(data []byte) ([]Pair, error) { return c.unmarshal(data) }
