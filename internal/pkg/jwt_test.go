package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParsePair(t *testing.T) {
	pair, err := GeneratePair(42, false)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.False(t, claims.IsStaff)
}

func TestStaffClaimSurvivesRefresh(t *testing.T) {
	pair, err := GeneratePair(7, true)
	require.NoError(t, err)

	renewed, err := Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := ParseAccess(renewed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.True(t, claims.IsStaff)
}

func TestParseAccessRejectsRefreshToken(t *testing.T) {
	pair, err := GeneratePair(1, false)
	require.NoError(t, err)

	// refresh 令牌用的是另一把密钥，access 解析必须失败
	_, err = ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestParseAccessGarbage(t *testing.T) {
	_, err := ParseAccess("not-a-token")
	assert.Error(t, err)
}
