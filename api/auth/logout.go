package auth

import (
	"lahmah_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleLogout clears both session cookies. It succeeds even without a
// valid session so a stuck client can always reset itself.
func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	lib.ClearCookie(lib.AccessCookieName, w)
	lib.ClearCookie(lib.RefreshCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
