package subm

import (
	"fmt"
	"net/http"

	"github.com/CIA-PoPS/HACKATHON-24-25/srvcerror"
)

const ErrCodeNotAuthenticated = "not_authenticated"

// ErrNotAuthenticated is shared with the HTTP layer, which rejects
// tokenless requests before the service is ever reached.
func ErrNotAuthenticated() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotAuthenticated,
		"not authenticated",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeNotAuthorized = "not_authorized"

func newErrNotAuthorized() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotAuthorized,
		"not authorized",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeCooldownActive = "cooldown_active"

func newErrCooldownActive(remainingSeconds int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCooldownActive,
		fmt.Sprintf("you are in cooldown for %d more seconds", remainingSeconds),
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeUserNotFound = "user_not_found"

func newErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"user not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func newErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"submission not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNoStagesSelected = "no_stages_selected"

func newErrNoStagesSelected() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoStagesSelected,
		"at least one stage must be selected",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInternalServerError = "internal_server_error"

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
