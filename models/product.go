package models

// ProductCategory groups products in the shop.
type ProductCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Product is a retail item sold through the shop.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	CategoryID  string  `json:"categoryId,omitempty"`
	InStock     bool    `json:"inStock"`
}

// CategoryShowcase is one shop-page section: a category plus a few featured products.
type CategoryShowcase struct {
	Category ProductCategory `json:"category"`
	Products []Product       `json:"products"`
}
