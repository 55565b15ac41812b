// Package client talks to the customer gRPC service.
//
// GRPCClient streams filtered records as an iterator and sends add, update
// and remove requests. Mutation outcomes come back as *customer.MutationFailure
// values; transport conditions are mapped to the sentinel errors in this
// package (ErrUnavailable, ErrStreamFailed) so callers can match them with
// errors.Is.
//
// Every call carries an x-request-id header the server logs it under.
package client
