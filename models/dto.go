package models

type AddToCartRequest struct {
	ProductID int    `json:"product_id" form:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity" form:"quantity" binding:"omitempty,max=10000"`
	Size      string `json:"size" form:"size"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" form:"quantity" binding:"required,max=10000"`
}

type ProductFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	Status    string `form:"status"`
	SortName  string `form:"sort_name" binding:"omitempty,oneof=asc desc"`
	SortPrice string `form:"sort_price" binding:"omitempty,oneof=asc desc"`
	MinPrice  int64  `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice  int64  `form:"max_price" binding:"omitempty,min=0"`
}
