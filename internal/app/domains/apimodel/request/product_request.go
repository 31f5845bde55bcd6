package request

// ProductRequest create or replace a product (DTO)
type ProductRequest struct {
	Slug        string   `json:"slug" binding:"required" example:"home-jersey-2026"`
	Name        string   `json:"name" binding:"required" example:"Home Jersey 2026"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"gt=0" example:"64.99"`
	Currency    string   `json:"currency" binding:"omitempty,len=3" example:"USD"`
	WeightLbs   float64  `json:"weight_lbs" binding:"gte=0" example:"0.5"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
	Sizes       []string `json:"sizes" example:"S,M,L,XL"`
	Stock       int      `json:"stock" binding:"gte=0" example:"100"`
	Active      bool     `json:"active"`
}
