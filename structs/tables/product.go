package tables

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	tableName     struct{}  `bun:"table:products,alias:p"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CategoryID    string    `bun:"category_id,notnull" json:"category_id"`
	NameAr        string    `bun:"name_ar,notnull" json:"name_ar"`
	NameEn        string    `bun:"name_en" json:"name_en"`
	DescriptionAr string    `bun:"description_ar" json:"description_ar"`
	Price         float64   `bun:"price,notnull" json:"price"`
	OldPrice      *float64  `bun:"old_price" json:"old_price,omitempty"` // pre-discount price, shown struck through
	ImageURL      string    `bun:"image_url" json:"image_url"`
	Stock         int       `bun:"stock,notnull,default:0" json:"stock"`
	IsActive      bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	Rating        float64   `bun:"rating" json:"rating"`
	ReviewCount   int       `bun:"review_count" json:"review_count"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	Category      *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}

// ProductCuttingMethod joins products to the butchery preparations they offer.
// No payload beyond the pair itself.
type ProductCuttingMethod struct {
	tableName       struct{}  `bun:"table:product_cutting_methods,alias:pcm"`
	ProductID       uuid.UUID `bun:"product_id,pk,type:uuid" json:"product_id"`
	CuttingMethodID int       `bun:"cutting_method_id,pk" json:"cutting_method_id"`
}
