// Package common contains shared constants and sentinel errors used across
// custkeeper components.
package common

// RequestIDHeaderName is the gRPC metadata key carrying the client-generated
// request id that server logs are correlated by.
const RequestIDHeaderName = "x-request-id"
