package auth

import (
	"lahmah_server/api/middleware"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
		return
	}

	id, err := uuid.Parse(claims.Sub.String())
	if err != nil {
		arm.logger.Warn("Token subject is not a valid id", gecho.Field("sub", claims.Sub))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid session"), gecho.Send())
		return
	}

	profile, err := arm.authService.GetProfileByID(r.Context(), id)
	if err != nil {
		arm.logger.Error("Failed to load profile for session", gecho.Field("error", err), gecho.Field("user_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Failed to load profile"), gecho.Send())
		return
	}
	if profile == nil {
		gecho.Unauthorized(w, gecho.WithMessage("Session profile no longer exists"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(profile),
		gecho.Send(),
	)
}
