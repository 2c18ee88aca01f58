package models

import "time"

// Cafe is an approved, publicly visible listing. Rating is derived from the
// amenity flags and seat count — it is never accepted from the client.
type Cafe struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"uniqueIndex;not null"`
	MapURL         string    `json:"map_url" gorm:"not null"`
	ImgURL         string    `json:"img_url" gorm:"not null"`
	Latitude       float64   `json:"latitude" gorm:"not null"`
	Longitude      float64   `json:"longitude" gorm:"not null"`
	Country        string    `json:"country" gorm:"not null"`
	City           string    `json:"city" gorm:"not null"`
	Location       string    `json:"location" gorm:"not null"`
	Description    string    `json:"description" gorm:"not null"`
	Seats          int       `json:"seats" gorm:"not null"`
	CoffeePrice    float64   `json:"coffee_price" gorm:"not null"`
	Rating         int       `json:"rating" gorm:"not null"`
	HasWifi        bool      `json:"has_wifi" gorm:"not null"`
	HasToilet      bool      `json:"has_toilet" gorm:"not null"`
	HasSockets     bool      `json:"has_sockets" gorm:"not null"`
	CanTakeCalls   bool      `json:"can_take_calls" gorm:"not null"`
	CanPayWithCard bool      `json:"can_pay_with_card" gorm:"not null"`
	Comments       []Comment `json:"comments,omitempty" gorm:"foreignKey:CafeID"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Suggestion is a visitor-submitted candidate cafe. Same shape as Cafe but
// without the unique name constraint; never shown publicly. Approval converts
// it into a Cafe, rejection deletes it — both terminal.
type Suggestion struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	MapURL         string    `json:"map_url" gorm:"not null"`
	ImgURL         string    `json:"img_url" gorm:"not null"`
	Latitude       float64   `json:"latitude" gorm:"not null"`
	Longitude      float64   `json:"longitude" gorm:"not null"`
	Country        string    `json:"country" gorm:"not null"`
	City           string    `json:"city" gorm:"not null"`
	Location       string    `json:"location" gorm:"not null"`
	Description    string    `json:"description" gorm:"not null"`
	Seats          int       `json:"seats" gorm:"not null"`
	CoffeePrice    float64   `json:"coffee_price" gorm:"not null"`
	Rating         int       `json:"rating" gorm:"not null"`
	HasWifi        bool      `json:"has_wifi" gorm:"not null"`
	HasToilet      bool      `json:"has_toilet" gorm:"not null"`
	HasSockets     bool      `json:"has_sockets" gorm:"not null"`
	CanTakeCalls   bool      `json:"can_take_calls" gorm:"not null"`
	CanPayWithCard bool      `json:"can_pay_with_card" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
}

// AsCafe copies the suggestion's fields into a new Cafe record.
func (s *Suggestion) AsCafe() Cafe {
	return Cafe{
		Name:           s.Name,
		MapURL:         s.MapURL,
		ImgURL:         s.ImgURL,
		Latitude:       s.Latitude,
		Longitude:      s.Longitude,
		Country:        s.Country,
		City:           s.City,
		Location:       s.Location,
		Description:    s.Description,
		Seats:          s.Seats,
		CoffeePrice:    s.CoffeePrice,
		Rating:         s.Rating,
		HasWifi:        s.HasWifi,
		HasToilet:      s.HasToilet,
		HasSockets:     s.HasSockets,
		CanTakeCalls:   s.CanTakeCalls,
		CanPayWithCard: s.CanPayWithCard,
	}
}
