// Package errs holds the error vocabulary shared by the domain, the use cases
// and the adapters.
//
// Every error type unwraps to a package sentinel, so callers branch with
// errors.Is on ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange,
// ErrObjectNotFound, ErrStorageUnavailable, ErrObjectAlreadyExists or
// ErrRelationViolated and use errors.As only when they need the parameter name
// or the failed operation. The HTTP adapter maps the
// sentinels to status codes; StorageUnavailableError additionally keeps the
// driver error reachable so context deadlines can be told apart.
package errs
