// Package prefs keeps per-visitor display preferences in a signed cookie.
package prefs

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid preference token")

const CookieName = "prefs"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	}
	return Light, false
}

// Palette holds the colors a page is rendered with.
type Palette struct {
	Text       string
	Background string
	Panel      string
	Accent     string
}

func (t Theme) Palette() Palette {
	if t == Dark {
		return Palette{Text: "#fafafa", Background: "#0e1117", Panel: "#262730", Accent: "#228b22"}
	}
	return Palette{Text: "#262730", Background: "#ffffff", Panel: "#f0f2f6", Accent: "#228b22"}
}

// Codec signs and verifies preference cookies with HS256.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *Codec) Cookie(theme Theme, host string) (*fiber.Cookie, error) {
	now := c.now()
	expires := now.Add(c.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Id:        uuid.NewString(),
		ExpiresAt: expires.Unix(),
		IssuedAt:  now.Unix(),
		Subject:   string(theme),
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Domain:   host,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}, nil
}

// Theme reads the theme from a cookie value. Anything unsigned, expired or
// unknown yields ErrInvalidToken.
func (c *Codec) Theme(cookie string) (Theme, error) {
	token, err := jwt.ParseWithClaims(cookie, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return Light, ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok {
		return Light, ErrInvalidToken
	}
	theme, ok := ParseTheme(claims.Subject)
	if !ok {
		return Light, ErrInvalidToken
	}
	return theme, nil
}
