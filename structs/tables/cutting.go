package tables

// CuttingMethod is a butchery preparation option selectable per product.
type CuttingMethod struct {
	tableName struct{} `bun:"table:cutting_methods,alias:cm"`
	Id        int      `bun:"id,pk,autoincrement" json:"id"`
	NameAr    string   `bun:"name_ar,notnull" json:"name_ar"`
}
