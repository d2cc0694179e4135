// Package vagabondv1alpha1 defines the Vagabond gRPC contract. Messages are
// plain Go structs carried by a JSON codec registered under the "json"
// content-subtype.
package vagabondv1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype every call in this package uses
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec marshals messages as JSON
type Codec struct{}

// Marshal encodes v as JSON
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON into v
func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the content-subtype
func (Codec) Name() string {
	return CodecName
}
