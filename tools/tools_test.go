package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasEmailDomain(t *testing.T) {
	assert.True(t, HasEmailDomain("ana@centime.com", "centime.com"))
	assert.True(t, HasEmailDomain("Ana@Centime.COM", "@centime.com"))
	assert.False(t, HasEmailDomain("ana@notcentime.com", "centime.com"))
	assert.False(t, HasEmailDomain("ana@centime.com.br", "centime.com"))
	assert.True(t, HasEmailDomain("ana@anything.io", ""))
}

func TestCheckPassword(t *testing.T) {
	assert.NotEmpty(t, CheckPassword("1234567"))
	assert.Empty(t, CheckPassword("12345678"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("qa.team@centime.com"))
	assert.False(t, ValidateEmail("qa.team@"))
}

func TestRandomToken(t *testing.T) {
	a, b := RandomToken(), RandomToken()
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Len(t, EncryptTextSHA512(a), 128)
}
