package models

// AnyBarberID is the sentinel barber identifier meaning "any available barber".
const AnyBarberID = "any"

// Barber is a staff member customers can book with.
type Barber struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Bio       string   `json:"bio,omitempty"`
	PhotoURL  string   `json:"photoUrl,omitempty"`
	Specialty string   `json:"specialty,omitempty"`
	Services  []string `json:"services,omitempty"` // service ids this barber offers
}
