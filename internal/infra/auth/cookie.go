package auth

import (
	"net/http"
	"time"

	"peterparts/config"
	"peterparts/internal/domain/service"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "auth_token"

// CookiePolicy builds the session cookie. Production uses Secure and
// SameSite=Strict, every other environment Lax over plain HTTP.
type CookiePolicy struct {
	maxAge   time.Duration
	secure   bool
	sameSite http.SameSite
}

// NewCookiePolicy derives the policy from the environment. The cookie lives
// exactly as long as the tokens it carries.
func NewCookiePolicy(cfg *config.Config, tokens service.TokenService) *CookiePolicy {
	policy := &CookiePolicy{
		maxAge:   tokens.TTL(),
		secure:   false,
		sameSite: http.SameSiteLaxMode,
	}
	if cfg.IsProduction() {
		policy.secure = true
		policy.sameSite = http.SameSiteStrictMode
	}

	return policy
}

// SessionCookie wraps token in a cookie with the configured attributes.
func (p *CookiePolicy) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(p.maxAge / time.Second),
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: p.sameSite,
	}
}

// ClearedCookie expires the session cookie with matching attributes.
func (p *CookiePolicy) ClearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: p.sameSite,
	}
}
