package model

// Dish is a menu item that can be ordered.
//
// Price is always positive once a dish has passed validation.
type Dish struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

// DishInput carries the validated fields used to create or update a dish.
type DishInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
}

// Apply copies the input fields onto d, leaving the id untouched.
func (in DishInput) Apply(d Dish) Dish {
	d.Name = in.Name
	d.Description = in.Description
	d.Price = in.Price
	d.ImageURL = in.ImageURL
	return d
}
