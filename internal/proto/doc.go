// Package proto holds the protoc-generated gRPC bindings for the
// BoardStore service. Regenerate after editing proto/qaboard.proto.
package proto

//go:generate protoc --proto_path=../../proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative qaboard.proto
