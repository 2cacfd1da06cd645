package auth

import (
	"errors"
	"lahmah_server/lib"
	"lahmah_server/structs"
	"lahmah_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your login information and try again"), gecho.Send())
		return
	}

	if body.Email == "" || body.Password == "" {
		arm.logger.Warn("Missing required fields in login")
		gecho.BadRequest(w, gecho.WithMessage("Email and password are required"), gecho.Send())
		return
	}

	profile, err := arm.authService.Login(r.Context(), body)
	if err != nil {
		// Non-admins get a hard 403 and no token at all
		if errors.Is(err, lib.ErrNotAdmin) {
			arm.logger.Warn("Non-admin login attempt", gecho.Field("email", body.Email))
			gecho.Forbidden(w, gecho.WithMessage("This account does not have dashboard access"), gecho.Send())
			return
		}

		arm.logger.Warn("Login failed", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
		return
	}

	accessToken, err := arm.authService.GenerateAccessToken(profile)
	if err != nil {
		arm.logger.Warn("Failed to generate access token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		return
	}

	refreshToken, err := arm.authService.GenerateRefreshToken(profile)
	if err != nil {
		arm.logger.Warn("Failed to generate refresh token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		return
	}

	lib.SetCookie(lib.RefreshCookieName, refreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, accessToken, arm.authService.GetAccessTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(&tables.AuthResponse{
			Profile:      profile,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		}),
		gecho.Send(),
	)
}
