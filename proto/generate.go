// Package proto holds the sidecar LLM service contract. Generated code is
// produced by protoc; run `go generate ./proto` after editing llm.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
