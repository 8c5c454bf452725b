// Package keyvalv1 provides the Protocol Buffer messages for the keyval RPC API.
//
// The schema lives in keyval.proto and admin.proto. Service keyval.Value
// keeps the procedure paths of the original service so existing gRPC
// clients continue to work:
//
//	/keyval.Value/GetValue
//	/keyval.Value/InsertKeyValue
//
// To regenerate:
//
//	go generate ./api/proto/v1
package keyvalv1

//go:generate protoc -I . --go_out=. --go_opt=paths=source_relative --connect-go_out=. --connect-go_opt=paths=source_relative keyval.proto admin.proto
