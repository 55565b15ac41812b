package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrStreamFailed = errors.New("record stream failed")
)
