// Package result carries the outcome of an operation as a value instead of
// a panic or a bare error: either success, or failure with a Classified
// payload that the transport layer knows how to render.
//
// The payload of a successful Of[T] is only reachable through MatchOf (or the
// combinators built on it), so a failed result can never be unwrapped.
package result

// Result is the outcome of an operation that produces no value.
// The zero value is a success.
type Result struct {
	err Classified
}

// Success returns a successful Result.
func Success() Result {
	return Result{}
}

// Failure returns a failed Result. It panics if err is nil.
func Failure(err Classified) Result {
	if isNil(err) {
		panic(ErrNilError)
	}
	return Result{err: err}
}

// IsSuccess reports whether the operation succeeded.
func (r Result) IsSuccess() bool { return r.err == nil }

// Err returns the failure payload, or nil on success.
func (r Result) Err() Classified { return r.err }

// Match calls exactly one of onSuccess or onFailure.
func Match[Out any](r Result, onSuccess func() Out, onFailure func(Classified) Out) Out {
	if r.err == nil {
		return onSuccess()
	}
	return onFailure(r.err)
}

// Of is the outcome of an operation that produces a value of type T.
type Of[T any] struct {
	value T
	err   Classified
}

// SuccessOf returns a successful result holding v.
func SuccessOf[T any](v T) Of[T] {
	return Of[T]{value: v}
}

// FailureOf returns a failed result. It panics if err is nil.
func FailureOf[T any](err Classified) Of[T] {
	if isNil(err) {
		panic(ErrNilError)
	}
	return Of[T]{err: err}
}

// IsSuccess reports whether the operation succeeded.
func (r Of[T]) IsSuccess() bool { return r.err == nil }

// Err returns the failure payload, or nil on success.
func (r Of[T]) Err() Classified { return r.err }

// MatchOf calls onSuccess with the value or onFailure with the error,
// never both.
func MatchOf[T, Out any](r Of[T], onSuccess func(T) Out, onFailure func(Classified) Out) Out {
	if r.err == nil {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Map transforms the value of a successful result. Failures pass through.
func Map[T, U any](r Of[T], fn func(T) U) Of[U] {
	return MatchOf(r,
		func(v T) Of[U] { return SuccessOf(fn(v)) },
		FailureOf[U],
	)
}

// Bind chains an operation that itself returns a result.
func Bind[T, U any](r Of[T], fn func(T) Of[U]) Of[U] {
	return MatchOf(r, fn, FailureOf[U])
}

// Unit drops the value of r and keeps only its outcome.
func Unit[T any](r Of[T]) Result {
	return MatchOf(r,
		func(T) Result { return Success() },
		Failure,
	)
}

// isNil catches typed nil pointers hidden behind the interface.
func isNil(err Classified) bool {
	switch e := err.(type) {
	case nil:
		return true
	case *Error:
		return e == nil
	case *ValidationError:
		return e == nil
	}
	return false
}
