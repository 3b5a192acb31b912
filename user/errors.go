package user

import (
	"fmt"
	"net/http"

	"github.com/CIA-PoPS/HACKATHON-24-25/srvcerror"
)

const ErrCodeNicknameTooShort = "nickname_too_short"

func newErrNicknameTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNicknameTooShort,
		fmt.Sprintf("nickname must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNicknameTooLong = "nickname_too_long"

func newErrNicknameTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNicknameTooLong,
		"nickname is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNicknameAlreadyExists = "nickname_exists"

func newErrNicknameExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNicknameAlreadyExists,
		"nickname already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeEmailAlreadyExists = "email_exists"

func newErrEmailExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailAlreadyExists,
		"email already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeEmailTooLong = "email_too_long"

func newErrEmailTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailTooLong,
		"email is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailEmpty = "email_empty"

func newErrEmailEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailEmpty,
		"email must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailInvalid = "email_invalid"

func newErrEmailInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailInvalid,
		"email is not valid",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooShort = "password_too_short"

func newErrPasswordTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooShort,
		fmt.Sprintf("password must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooLong = "password_too_long"

func newErrPasswordTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooLong,
		"password is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUserNotFound = "user_not_found"

func newErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"user not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidCredentials = "invalid_credentials"

func newErrInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"email, nickname or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeEmailNotVerified = "email_not_verified"

func newErrEmailNotVerified() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailNotVerified,
		"email is not verified",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeInvalidVerificationToken = "invalid_verification_token"

func newErrInvalidVerificationToken() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidVerificationToken,
		"verification link is invalid or has expired",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInternalServerError = "internal_server_error"

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
