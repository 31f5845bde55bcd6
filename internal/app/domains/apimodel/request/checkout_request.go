package request

// CheckoutRequest cart submitted at checkout (DTO)
type CheckoutRequest struct {
	Items    []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	Customer Customer       `json:"customer" binding:"required"`
	ShipTo   Address        `json:"ship_to" binding:"required"`
}

// CheckoutItem cart line
type CheckoutItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0" example:"1"`
	Size      string `json:"size,omitempty" example:"M"`
}

// Customer buyer contact
type Customer struct {
	Name  string `json:"name" binding:"required" example:"Sam Fan"`
	Email string `json:"email" binding:"required,email" example:"sam@example.com"`
}

// Address shipping address
type Address struct {
	Street1    string `json:"street1" binding:"required" example:"9500 Wilshire Blvd"`
	Street2    string `json:"street2"`
	City       string `json:"city" binding:"required" example:"Beverly Hills"`
	State      string `json:"state" binding:"required" example:"CA"`
	PostalCode string `json:"postal_code" binding:"required" example:"90210"`
	Country    string `json:"country" binding:"required" example:"US"`
}
