package tables

import "github.com/google/uuid"

// Banner is a promotional image shown in the consumer-facing app.
type Banner struct {
	tableName    struct{}  `bun:"table:banners,alias:b"`
	Id           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Title        string    `bun:"title" json:"title"`
	ImageURL     string    `bun:"image_url,notnull" json:"image_url"`
	IsActive     bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	DisplayOrder int       `bun:"display_order,notnull,default:0" json:"display_order"` // sort key only
}
