package tables

import "github.com/google/uuid"

// AppSettings is a singleton row. Callers read the existing row id first and
// branch into insert-vs-update; there is no uniqueness constraint enforcing
// the singleton beyond that convention.
type AppSettings struct {
	tableName     struct{}  `bun:"table:app_settings,alias:s"`
	Id            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	DeliveryFee   float64   `bun:"delivery_fee,notnull,default:0" json:"delivery_fee"`
	TaxPercentage float64   `bun:"tax_percentage,notnull,default:0" json:"tax_percentage"`
	ContactPhone  string    `bun:"contact_phone" json:"contact_phone"`
	IsAppActive   bool      `bun:"is_app_active,notnull,default:true" json:"is_app_active"` // global ordering kill switch
}
