// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles administrator credentials, bearer tokens, and password
hashing.

# Admin Login

The server is configured with a single administrator principal. VerifyAdmin
compares both credential parts in constant time and returns a single generic
error, so responses never reveal which part was wrong:

	if err := auth.VerifyAdmin(req.Username, req.Password, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		// 401, generic message
	}

# Bearer Tokens

Successful logins are issued an HS256 JWT with a configured lifetime:

	token, err := auth.IssueAdminToken(username, cfg.JWTSecret, cfg.TokenTTL)

VerifyAdminToken validates the token on every admin API call. Tokens are
stateless; there is no revocation list.

# Password Hashing

Registration passwords are hashed with bcrypt before storage:

	hash, err := auth.HashPassword(req.Password)
	ok := auth.CheckPassword(hash, candidate)
*/
package auth
