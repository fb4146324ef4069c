// Package apiconnect wires the messages of package api to Connect handlers and
// clients, one file per service, in the shape connect-go code generation
// produces.
package apiconnect
