package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordAndCheck(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.True(t, CheckPassword("correct horse battery staple", hash))
	require.False(t, CheckPassword("wrong password", hash))
}

func TestCheckPasswordRejectsMalformedHash(t *testing.T) {
	require.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
}
