package domain

// CartItem ties a product to a user's cart. ProductID and UserID are loose
// references; the storage layer does not enforce that they resolve.
type CartItem struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	ProductID *string `gorm:"size:36;index" json:"productId"`
	Quantity  *int    `gorm:"default:1" json:"quantity"`
	UserID    *string `gorm:"size:36;index" json:"userId"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

type InsertCartItem struct {
	ProductID *string `json:"productId"`
	Quantity  *int    `json:"quantity" validate:"omitempty,min=1"`
	UserID    *string `json:"userId"`
}
