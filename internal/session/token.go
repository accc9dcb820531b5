package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the expiry instant from an access token's claims.
//
// The token is decoded without signature verification: the client holds no
// signing key and only needs the exp claim to plan a proactive refresh.
// A token that cannot be decoded, or that carries no exp claim, yields
// ok == false; callers then fall back to reactive (401-driven) refresh.
func TokenExpiry(token string) (expiry time.Time, ok bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
