package tables

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	tableName    struct{}  `bun:"table:profiles,alias:pr"`
	Id           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	FullName     string    `bun:"full_name" json:"full_name"`
	Phone        string    `bun:"phone" json:"phone"`
	Email        string    `bun:"email,unique" json:"email"`
	PasswordHash string    `bun:"password_hash" json:"-"`
	Role         string    `bun:"role,notnull,default:'customer'" json:"role"` // admin or customer
	IsAdmin      bool      `bun:"is_admin,notnull,default:false" json:"is_admin"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

// CanAdminister reports whether the profile passes the post-auth admin gate.
// Either marker grants access; historical rows set only one of the two.
func (p *Profile) CanAdminister() bool {
	return p.Role == "admin" || p.IsAdmin
}

type AuthResponse struct {
	Profile      *Profile `json:"profile"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}
