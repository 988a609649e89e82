// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity tokens and password hashing.

# Tokens

TokenIssuer signs HS256 JWTs whose subject is the numeric user id:

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	token, err := issuer.Issue(user)
	userID, err := issuer.Verify(token)

Verify rejects other signing methods, expired tokens and tokens without
an expiry. Failures wrap ErrInvalidToken.

Tokens arrive in the Authorization header:

	token, err := auth.BearerToken(r.Header.Get("Authorization"))

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password) // ErrInvalidCredentials on mismatch
*/
package auth
