package errors

import "fmt"

// Fault is the panic value for a violated caller contract: a buffer of the
// wrong length, a single-byte span with S < E, a width wider than the value
// type. Faults cannot be caused by wire data and are never returned.
type Fault struct {
	Op     string
	Detail string
}

func (f *Fault) Error() string {
	return "bitpack: " + f.Op + ": " + f.Detail
}

// Faultf panics with a *Fault for operation op.
func Faultf(op, format string, args ...any) {
	panic(&Fault{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// Recover classifies a value returned by the built-in recover: nil gives nil,
// a *Fault is returned as an error and anything else panics again. The
// recover call itself must sit directly in the deferred function.
//
//	defer func() { err = errors.Recover(recover()) }()
func Recover(r any) error {
	if r == nil {
		return nil
	}
	if f, ok := r.(*Fault); ok {
		return f
	}
	panic(r)
}
