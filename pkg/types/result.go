package types

import "errors"

// Result is the envelope every VendorService operation returns. Backends
// never return a Go error across the service boundary; failures are carried
// in Error with Success false.
type Result[T any] struct {
	Success bool
	Data    T
	Error   string
}

// Ok wraps data in a successful Result.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail converts err into a failed Result.
func Fail[T any](err error) Result[T] {
	msg := "unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Result[T]{Error: msg}
}

// Err returns nil for a successful Result and an error carrying the
// failure message otherwise.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	if r.Error == "" {
		return errors.New("unknown error")
	}
	return errors.New(r.Error)
}
