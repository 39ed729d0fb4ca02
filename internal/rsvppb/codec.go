// Package rsvppb holds the wire types and gRPC service contract for the
// reservation RPC surface (§6). Code generation from a .proto file
// (protoc-gen-go / protoc-gen-go-grpc) is explicitly out of scope for
// this core (spec §1) — these types are hand-written in the shape that
// step would have produced, and registered against grpc-go's codec
// extension point under the "json" subtype instead of the default
// protobuf wire codec, since there is no protoc run here to produce
// the descriptors the default codec needs.
//
// See proto/reservation.proto for the IDL this package implements.
package rsvppb

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const codecName = "json"

// jsonCodec implements encoding.Codec using encoding/json. Registering a
// named codec and selecting it via grpc.CallContentSubtype on the client
// (and automatic negotiation on the server) is a supported, documented
// grpc-go extension point — used here instead of protobuf's binary wire
// format because no protoc step produced proto.Message implementations
// for the types in this package.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return codecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
