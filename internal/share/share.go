// Package share encodes texts as URL-safe tokens so that an analysis can be
// reopened from a link.
package share

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// QueryKey is the link query parameter that carries the token.
const QueryKey = "value"

// ErrInvalidToken is returned for tokens that do not decode to UTF-8 text.
var ErrInvalidToken = errors.New("invalid share token")

// Encode returns the unpadded base64url encoding of text.
func Encode(text string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(text))
}

// Decode reverses Encode. Padded tokens are accepted.
func Decode(token string) (string, error) {
	token = strings.TrimRight(strings.TrimSpace(token), "=")
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: not UTF-8 text", ErrInvalidToken)
	}
	return string(b), nil
}

// Link appends the token for text to base as the value query parameter,
// keeping any other parameters of base.
func Link(base, text string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set(QueryKey, Encode(text))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// TokenFromLink extracts the token from a link. Input that is not a link
// with a value parameter is returned unchanged so that bare tokens work too.
func TokenFromLink(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "?") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	if v := u.Query().Get(QueryKey); v != "" {
		return v
	}
	return s
}

// Open decodes a link or bare token back into text.
func Open(s string) (string, error) {
	return Decode(TokenFromLink(s))
}
