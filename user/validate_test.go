package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CIA-PoPS/HACKATHON-24-25/srvcerror"
)

func errCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	var srvcErr *srvcerror.Error
	require.ErrorAs(t, err, &srvcErr)
	return srvcErr.ErrorCode()
}

func TestValidateNickname(t *testing.T) {
	assert.NoError(t, validateNickname("ab"))
	assert.NoError(t, validateNickname(strings.Repeat("a", 32)))

	assert.Equal(t, ErrCodeNicknameTooShort, errCode(t, validateNickname("a")))
	assert.Equal(t, ErrCodeNicknameTooShort, errCode(t, validateNickname("")))
	assert.Equal(t, ErrCodeNicknameTooLong, errCode(t, validateNickname(strings.Repeat("a", 33))))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validateEmail("team@example.com"))

	assert.Equal(t, ErrCodeEmailEmpty, errCode(t, validateEmail("")))
	assert.Equal(t, ErrCodeEmailInvalid, errCode(t, validateEmail("not-an-email")))
	longEmail := strings.Repeat("a", 310) + "@example.com"
	assert.Equal(t, ErrCodeEmailTooLong, errCode(t, validateEmail(longEmail)))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validatePassword("password123"))
	assert.NoError(t, validatePassword(strings.Repeat("a", 1024)))

	assert.Equal(t, ErrCodePasswordTooShort, errCode(t, validatePassword("short")))
	assert.Equal(t, ErrCodePasswordTooLong, errCode(t, validatePassword(strings.Repeat("a", 1025))))
}
