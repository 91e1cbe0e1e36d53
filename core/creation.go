package core

// CreationErrorKind classifies why an entity creation failed. The set is
// closed: services never surface raw storage errors, only one of these kinds
// plus a caller-safe message.
type CreationErrorKind string

const (
	// ErrorKindNotFound means a referenced parent entity does not exist.
	ErrorKindNotFound CreationErrorKind = "not_found"
	// ErrorKindInvalidInput means a semantic validation failure.
	ErrorKindInvalidInput CreationErrorKind = "invalid_input"
	// ErrorKindConflict means a uniqueness or integrity violation.
	ErrorKindConflict CreationErrorKind = "conflict"
	// ErrorKindDependencyFailure means the store could not answer a lookup.
	ErrorKindDependencyFailure CreationErrorKind = "dependency_failure"
	// ErrorKindUnknown means an unexpected failure during persistence.
	ErrorKindUnknown CreationErrorKind = "unknown"
)

// CreationResult is the sole channel by which a creation service reports its
// outcome. Exactly one arm is populated: a successful result carries the
// entity and no error kind, a failed one carries a kind and message but no
// entity.
type CreationResult[E any] struct {
	Success   bool
	Entity    *E
	ErrorKind CreationErrorKind
	Message   string
}

// CreationSucceeded builds the success arm of a CreationResult.
func CreationSucceeded[E any](entity *E) CreationResult[E] {
	return CreationResult[E]{Success: true, Entity: entity}
}

// CreationFailed builds the failure arm of a CreationResult.
func CreationFailed[E any](kind CreationErrorKind, message string) CreationResult[E] {
	return CreationResult[E]{ErrorKind: kind, Message: message}
}
