// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session pairs an authenticated provider session token with the time it
// was last refreshed. It is persisted only in sealed form; staleness is
// tracked through the sealed blob's modification time, so LastRefreshedAt
// is informational.
type Session struct {
	// Token is the opaque time-bounded credential permitting provider API
	// calls without re-authenticating.
	Token string `json:"token"`

	// LastRefreshedAt records when the token was obtained or last reused.
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}
