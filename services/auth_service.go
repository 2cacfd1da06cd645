package services

import (
	"context"
	"lahmah_server/database"
	"lahmah_server/lib"
	"lahmah_server/structs"
	"lahmah_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

// Login authenticates an email/password pair and enforces the admin gate:
// a valid credential pair on a non-admin profile is rejected outright and no
// token is ever issued for it.
func (as *AuthService) Login(ctx context.Context, authRequest *structs.AuthRequest) (*tables.Profile, error) {
	startTime := time.Now()

	profile, err := database.Query[tables.Profile](as.db).Where("email", authRequest.Email).First(ctx)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		if !lib.IsNotFound(mappedErr) {
			as.logger.Error("Unexpected database error during login",
				gecho.Field("error", mappedErr),
				gecho.Field("original_error", err),
			)
		}

		// Always return invalid credentials (don't leak user existence)
		return nil, lib.ErrInvalidCredentials
	}

	// First() returns nil, nil for no results
	if profile == nil {
		as.logger.Debug("Profile not found during login attempt", gecho.Field("identifier", authRequest.Email))
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := lib.VerifyPassword(authRequest.Password, profile.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("profile_id", profile.Id),
		)
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt",
			gecho.Field("identifier", authRequest.Email),
			gecho.Field("profile_id", profile.Id),
		)
		return nil, lib.ErrInvalidCredentials
	}

	// Post-auth admin gate: valid credentials are not enough
	if !profile.CanAdminister() {
		as.logger.Warn("Non-admin login attempt rejected",
			gecho.Field("profile_id", profile.Id),
			gecho.Field("role", profile.Role),
		)
		return nil, lib.ErrNotAdmin
	}

	as.logger.Debug("Admin logged in successfully",
		gecho.Field("profile_id", profile.Id),
		gecho.Field("elapsed_time_ms", time.Since(startTime).Milliseconds()),
	)

	// Remove password hash before returning the profile
	profile.PasswordHash = ""

	return profile, nil
}

// GenerateAccessToken generates a JWT access token for the given profile
func (as *AuthService) GenerateAccessToken(profile *tables.Profile) (string, error) {
	return as.signToken(profile, as.cfg.Auth.AccessTokenSecret, as.GetAccessTokenExpiration())
}

// GenerateRefreshToken generates a JWT refresh token for the given profile
func (as *AuthService) GenerateRefreshToken(profile *tables.Profile) (string, error) {
	return as.signToken(profile, as.cfg.Auth.RefreshTokenSecret, as.GetRefreshTokenExpiration())
}

func (as *AuthService) signToken(profile *tables.Profile, secret string, exp time.Time) (string, error) {
	now := time.Now()

	// Legacy rows carry is_admin with role still "customer"; the claim is
	// normalized so downstream checks only ever look at the role.
	role := profile.Role
	if profile.CanAdminister() {
		role = "admin"
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   profile.Id.String(),
		"email": profile.Email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
		"jti":   uuid.New().String(),
	})
	return token.SignedString([]byte(secret))
}

// GetAccessTokenExpiration returns the expiration time for access tokens
func (as *AuthService) GetAccessTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.AccessTokenExpiry)
}

// GetRefreshTokenExpiration returns the expiration time for refresh tokens
func (as *AuthService) GetRefreshTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.RefreshTokenExpiry)
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}

// GetProfileByID loads the profile backing a set of verified claims
func (as *AuthService) GetProfileByID(ctx context.Context, id uuid.UUID) (*tables.Profile, error) {
	profile, err := database.FindByID[tables.Profile](as.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if profile != nil {
		profile.PasswordHash = ""
	}
	return profile, nil
}
