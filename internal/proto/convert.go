// Package proto holds the customers.v1 messages and gRPC service generated
// from customer.proto, plus conversions to and from the customer package.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative customer.proto

import (
	"errors"
	"fmt"
	"math"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
)

// CustomerFromRecord converts a stored record. Stored discounts are always
// in range; records coming from user input go through NewCustomer.
func CustomerFromRecord(r customer.Record) *Customer {
	return &Customer{
		Id:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Discount:     int32(r.Discount),
		CanBeRemoved: r.Removable,
	}
}

// NewCustomer converts r for an add or update request. A discount that does
// not fit the wire type is rejected instead of wrapping.
func NewCustomer(r customer.Record) (*Customer, error) {
	if r.Discount < math.MinInt32 || r.Discount > math.MaxInt32 {
		return nil, &customer.MutationFailure{
			Kind: customer.Invalid,
			ID:   r.ID,
			Err:  fmt.Errorf("discount %d out of range", r.Discount),
		}
	}
	return CustomerFromRecord(r), nil
}

func (x *Customer) Record() customer.Record {
	if x == nil {
		return customer.Record{}
	}
	return customer.Record{
		ID:        x.Id,
		FirstName: x.FirstName,
		LastName:  x.LastName,
		Email:     x.Email,
		Discount:  int(x.Discount),
		Removable: x.CanBeRemoved,
	}
}

func FilterFromSpec(f customer.FilterSpec) *CustomerFilter {
	t := FilterType_ALL
	switch f.Mode {
	case customer.FilterName:
		t = FilterType_NAME
	case customer.FilterEmail:
		t = FilterType_EMAIL
	}
	return &CustomerFilter{FilterType: t, SearchText: f.Text}
}

// Spec converts the filter back; unknown filter types widen to All.
func (x *CustomerFilter) Spec() customer.FilterSpec {
	mode := customer.FilterAll
	switch x.GetFilterType() {
	case FilterType_NAME:
		mode = customer.FilterName
	case FilterType_EMAIL:
		mode = customer.FilterEmail
	}
	return customer.FilterSpec{Mode: mode, Text: x.GetSearchText()}
}

// Success builds the outcome of a mutation that went through. c may be nil.
func Success(c *Customer) *CustomerResponse {
	return &CustomerResponse{Status: ResponseStatus_SUCCESS, Customer: c}
}

// Failure builds the ERROR outcome for err. Errors that are not a
// *customer.MutationFailure are reported as store errors.
func Failure(id string, err error) *CustomerResponse {
	kind, ok := customer.FailureKindOf(err)
	if !ok {
		kind = customer.StoreError
	}
	resp := &CustomerResponse{
		Status:    ResponseStatus_ERROR,
		Message:   err.Error(),
		ErrorKind: string(kind),
	}
	if id != "" {
		resp.Customer = &Customer{Id: id}
	}
	return resp
}

// Err returns nil for a SUCCESS response and the decoded
// *customer.MutationFailure otherwise.
func (x *CustomerResponse) Err() error {
	if x.GetStatus() == ResponseStatus_SUCCESS {
		return nil
	}

	kind := customer.FailureKind(x.GetErrorKind())
	switch kind {
	case customer.NotFound, customer.NotRemovable, customer.Invalid, customer.StoreError:
	default:
		kind = customer.StoreError
	}

	msg := x.GetMessage()
	if msg == "" {
		msg = "request failed"
	}
	return &customer.MutationFailure{
		Kind:    kind,
		ID:      x.GetCustomer().GetId(),
		Err:     errors.New(msg),
		Message: msg,
	}
}
