// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session tokens.

# Passwords

Passwords are hashed with bcrypt:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password) // ErrInvalidCredentials on mismatch

Input longer than MaxPasswordBytes (the bcrypt limit of 72 bytes) is
truncated before hashing and before verification, so both sides agree.

When an account does not exist, RejectPassword performs an equivalent
bcrypt comparison against a fixed hash and returns ErrInvalidCredentials.
Callers cannot tell an unknown email from a wrong password, by body or by
timing.

# Sessions

A session is an HS256 JWT whose subject is the user id, stored in the
http-only SessionCookieName cookie:

	sessions := auth.NewSessions(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies)
	err := sessions.SetCookie(w, userID)
	userID, err := sessions.UserID(r)

UserID returns ErrNoSession when the cookie is absent and ErrInvalidToken
when it is present but does not verify (bad signature, expired, malformed).
*/
package auth
