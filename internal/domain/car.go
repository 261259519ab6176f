package domain

// CarPrice holds the daily rate in the three display currencies.
// Billing is always done in LKR; the other two are display-only.
type CarPrice struct {
	USD float64 `json:"usd"`
	LKR float64 `json:"lkr"`
	EUR float64 `json:"eur"`
}

type Car struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	IsAvailable    bool     `json:"is_available"`
	PricePerDay    CarPrice `json:"price_per_day"`
	PriceEnabled   bool     `json:"price_enabled"`
	Specifications []string `json:"specifications"`
	// BookedDates is a set of "YYYY-MM-DD" dates on which the car is taken.
	// Represented as a slice but maintained with set semantics: a date
	// appears at most once.
	BookedDates []string `json:"booked_dates"`
	CreatedOn   string   `json:"created_on"`
}
