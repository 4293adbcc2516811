package serialization

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// JSONCodec is the human-readable default.
type JSONCodec struct {
	Indent bool
}

// Encode marshals v as JSON.
func (c *JSONCodec) Encode(v any) ([]byte, error) {
	if c.Indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// Decode unmarshals JSON into v.
func (c *JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the codec identifier.
func (c *JSONCodec) Name() string { return "json" }

// MsgpackCodec is the compact binary option.
type MsgpackCodec struct{}

// Encode marshals v as msgpack.
func (c *MsgpackCodec) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Decode unmarshals msgpack into v.
func (c *MsgpackCodec) Decode(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Name returns the codec identifier.
func (c *MsgpackCodec) Name() string { return "msgpack" }

// CodecByName resolves a codec identifier, defaulting to JSON for
// unknown names.
func CodecByName(name string) Codec {
	switch name {
	case "msgpack":
		return &MsgpackCodec{}
	default:
		return &JSONCodec{}
	}
}
