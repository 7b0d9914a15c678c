package service

import "time"

// SetTokenClock replaces the clock of a TokenService built by NewTokenService.
func SetTokenClock(ts TokenService, now func() time.Time) {
	ts.(*tokenService).now = now
}
