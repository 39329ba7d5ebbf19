package prefs

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	c := NewCodec("secret", time.Hour)
	for _, theme := range []Theme{Light, Dark} {
		cookie, err := c.Cookie(theme, "localhost")
		require.NoError(t, err)
		assert.Equal(t, CookieName, cookie.Name)
		assert.True(t, cookie.HTTPOnly)

		got, err := c.Theme(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, theme, got)
	}
}

func TestCodecRejects(t *testing.T) {
	c := NewCodec("secret", time.Hour)
	other := NewCodec("other", time.Hour)
	signedElsewhere, err := other.Cookie(Dark, "")
	require.NoError(t, err)

	expired := NewCodec("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Cookie(Dark, "")
	require.NoError(t, err)

	unknown, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   "neon",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "wrong secret", token: signedElsewhere.Value},
		{name: "expired", token: old.Value},
		{name: "unknown theme", token: unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := c.Theme(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Equal(t, Light, theme)
		})
	}
}

func TestThemePalette(t *testing.T) {
	assert.Equal(t, "#0e1117", Dark.Palette().Background)
	assert.Equal(t, "#fafafa", Dark.Palette().Text)
	assert.Equal(t, "#ffffff", Light.Palette().Background)
	assert.Equal(t, "#262730", Light.Palette().Text)

	theme, ok := ParseTheme("dark")
	assert.True(t, ok)
	assert.Equal(t, Dark, theme)
	_, ok = ParseTheme("sepia")
	assert.False(t, ok)
}
