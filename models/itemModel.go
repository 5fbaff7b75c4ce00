package models

// Item is one sellable menu item. The key of its document is the item id
// shown on the order page.
type Item struct {
	Name        *string `json:"name" validate:"required,min=1,max=100"`
	Price       *int    `json:"price" validate:"required,gte=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
	IsSoldOut   bool    `json:"is_sold_out"`
}
