package domain

// Product represents a catalog item that can be compared against others.
// Price and Rating are pointers so that a missing value can be told apart
// from zero.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"productName"`
	ImageURL       string   `json:"imageUrl"`
	Description    string   `json:"description"`
	Price          *float64 `json:"price"`
	Rating         *float64 `json:"rating"`
	Specifications string   `json:"specifications"`
}

// Clone returns a copy of the product that shares no pointers with p.
func (p Product) Clone() Product {
	out := p
	if p.Price != nil {
		v := *p.Price
		out.Price = &v
	}
	if p.Rating != nil {
		v := *p.Rating
		out.Rating = &v
	}
	return out
}

// Float64 returns a pointer to v.
func Float64(v float64) *float64 {
	return &v
}
