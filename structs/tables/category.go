package tables

// Category groups products. The id is a human-readable slug (lowercased, spaces
// replaced with underscores) chosen by the admin when the category is created.
type Category struct {
	tableName struct{} `bun:"table:categories,alias:c"`
	ID        string   `bun:"id,pk" json:"id"`
	NameAr    string   `bun:"name_ar,notnull" json:"name_ar"`
	NameEn    string   `bun:"name_en" json:"name_en"`
	ImageURL  string   `bun:"image_url" json:"image_url"`
	Position  int      `bun:"position,notnull,default:0" json:"position"` // display sort key only, not unique
}

// CategoryWithCount is a Category plus its dependent product count, produced by
// a single aggregate query for the categories overview.
type CategoryWithCount struct {
	Category
	ProductCount int `bun:"product_count" json:"product_count"`
}
