package api

import (
	"net/http"

	"cityhive/core"
)

// statusForUserError maps a user creation failure to an HTTP status. Users
// have no parent entity, so NotFound never occurs and falls through to the
// invalid input bucket.
func statusForUserError(kind core.CreationErrorKind) int {
	switch kind {
	case core.ErrorKindConflict:
		return http.StatusConflict
	case core.ErrorKindDependencyFailure, core.ErrorKindUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// statusForHiveError maps a hive creation failure to an HTTP status
func statusForHiveError(kind core.CreationErrorKind) int {
	switch kind {
	case core.ErrorKindNotFound:
		return http.StatusNotFound
	case core.ErrorKindConflict:
		return http.StatusConflict
	case core.ErrorKindDependencyFailure, core.ErrorKindUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// statusForInspectionError maps an inspection creation failure to an HTTP
// status. Same table as hives: the parent lookup can yield NotFound.
func statusForInspectionError(kind core.CreationErrorKind) int {
	return statusForHiveError(kind)
}
