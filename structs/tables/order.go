package tables

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	tableName struct{}  `bun:"table:orders,alias:o"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`

	// The placing customer. Nullable because guest checkouts carry no profile,
	// and orders.user_id is not a declared foreign key in the store.
	UserId *uuid.UUID `bun:"user_id,type:uuid" json:"user_id,omitempty"`

	TotalAmount   float64     `bun:"total_amount,notnull" json:"total_amount" validate:"gte=0"`
	Status        OrderStatus `bun:"status,notnull" json:"status"`
	PaymentMethod string      `bun:"payment_method" json:"payment_method"`
	Phone         string      `bun:"phone" json:"phone"`
	City          string      `bun:"city" json:"city"`
	Address       string      `bun:"address" json:"address"`
	CreatedAt     time.Time   `bun:"created_at,notnull,default:now()" json:"created_at"`

	// Attached by the service layer, never persisted here.
	Profile *Profile    `bun:"-" json:"profile,omitempty"`
	Items   []OrderItem `bun:"-" json:"order_items,omitempty"`
}

type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id" validate:"required,uuid4"`
	ProductId uuid.UUID `bun:"product_id,type:uuid" json:"product_id"`
	Quantity  int       `bun:"quantity,notnull" json:"quantity" validate:"required,min=1"`
	Price     float64   `bun:"price,notnull" json:"price" validate:"gte=0"`   // unit price at time of order
	Subtotal  float64   `bun:"subtotal,notnull" json:"subtotal"`              // quantity * price

	// Free-form per-line details captured at checkout. Stored as jsonb with a
	// fixed set of known keys; absent keys stay null.
	Metadata *ItemMeta `bun:"metadata,type:jsonb" json:"metadata,omitempty"`

	// Bilingual product name resolved by the service layer for display, since
	// older rows never stored the name on the line itself.
	ProductNameAr string `bun:"-" json:"product_name_ar,omitempty"`
	ProductNameEn string `bun:"-" json:"product_name_en,omitempty"`
}

// ItemMeta is the structured sidecar for order-line details. Historical rows
// spread these values over several ad-hoc key spellings; new rows write only
// these keys.
type ItemMeta struct {
	ProductName *string `json:"product_name,omitempty"`
	Weight      *string `json:"weight,omitempty"`
	Cutting     *string `json:"cutting,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// OrderStatus is the Arabic-labeled lifecycle value shown in the consumer app.
// Transitions are unconstrained: the admin may set any status from any status
// as a manual override.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "جديد"
	OrderStatusProcessing OrderStatus = "تحت التجهيز"
	OrderStatusShipping   OrderStatus = "في الطريق"
	OrderStatusCompleted  OrderStatus = "مكتمل"
	OrderStatusCancelled  OrderStatus = "ملغي"
)

// KnownStatuses lists every status the admin UI may set.
var KnownStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusProcessing,
	OrderStatusShipping,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// ActiveStatuses are the states counted as "in progress" on the dashboard.
var ActiveStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusProcessing,
	OrderStatusShipping,
}
