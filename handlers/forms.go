package handlers

import (
	"errors"
	"strconv"
	"strings"

	"cafe-directory-api/models"
	"cafe-directory-api/rating"

	"github.com/gin-gonic/gin"
)

// cafeForm is the shared field set submitted by the add, suggest and edit
// forms. Rating never appears here — it is always recomputed server-side.
type cafeForm struct {
	Name           string
	MapURL         string
	ImgURL         string
	Country        string
	City           string
	Location       string
	Description    string
	Latitude       float64
	Longitude      float64
	CoffeePrice    float64
	Seats          int
	HasWifi        bool
	HasToilet      bool
	HasSockets     bool
	CanTakeCalls   bool
	CanPayWithCard bool
}

// checkbox reads an amenity flag with explicit checkbox semantics: an absent
// key is false, and so are the canonical negative spellings. A browser
// checkbox submits "on", which counts as checked. The original site coerced
// any non-empty string (even the text "false") to true; that bug is not kept.
func checkbox(c *gin.Context, name string) bool {
	v, ok := c.GetPostForm(name)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "false", "0", "off", "no":
		return false
	}
	return true
}

// parseCafeForm decodes and validates a submitted cafe form.
func parseCafeForm(c *gin.Context) (*cafeForm, error) {
	f := &cafeForm{
		Name:           strings.TrimSpace(c.PostForm("name")),
		MapURL:         strings.TrimSpace(c.PostForm("map_url")),
		ImgURL:         strings.TrimSpace(c.PostForm("img_url")),
		Country:        strings.TrimSpace(c.PostForm("country")),
		City:           strings.TrimSpace(c.PostForm("city")),
		Location:       strings.TrimSpace(c.PostForm("location")),
		Description:    strings.TrimSpace(c.PostForm("description")),
		HasWifi:        checkbox(c, "has_wifi"),
		HasToilet:      checkbox(c, "has_toilet"),
		HasSockets:     checkbox(c, "has_sockets"),
		CanTakeCalls:   checkbox(c, "can_take_calls"),
		CanPayWithCard: checkbox(c, "can_pay_with_card"),
	}

	required := map[string]string{
		"name":        f.Name,
		"map_url":     f.MapURL,
		"img_url":     f.ImgURL,
		"country":     f.Country,
		"city":        f.City,
		"location":    f.Location,
		"description": f.Description,
	}
	for field, val := range required {
		if val == "" {
			return nil, errors.New(field + " is required")
		}
	}

	seats, err := strconv.Atoi(c.PostForm("seats"))
	if err != nil || seats < 0 {
		return nil, errors.New("seats must be a non-negative whole number")
	}
	f.Seats = seats

	f.Latitude, err = strconv.ParseFloat(c.PostForm("latitude"), 64)
	if err != nil {
		return nil, errors.New("latitude must be a number")
	}
	f.Longitude, err = strconv.ParseFloat(c.PostForm("longitude"), 64)
	if err != nil {
		return nil, errors.New("longitude must be a number")
	}
	f.CoffeePrice, err = strconv.ParseFloat(c.PostForm("coffee_price"), 64)
	if err != nil {
		return nil, errors.New("coffee_price must be a number")
	}

	return f, nil
}

// Rating computes the derived score for the submitted amenities.
func (f *cafeForm) Rating() int {
	return rating.Compute(f.Seats, f.HasWifi, f.HasToilet, f.HasSockets, f.CanTakeCalls, f.CanPayWithCard)
}

// asCafe builds a Cafe record from the form.
func (f *cafeForm) asCafe() models.Cafe {
	return models.Cafe{
		Name:           f.Name,
		MapURL:         f.MapURL,
		ImgURL:         f.ImgURL,
		Latitude:       f.Latitude,
		Longitude:      f.Longitude,
		Country:        f.Country,
		City:           f.City,
		Location:       f.Location,
		Description:    f.Description,
		Seats:          f.Seats,
		CoffeePrice:    f.CoffeePrice,
		Rating:         f.Rating(),
		HasWifi:        f.HasWifi,
		HasToilet:      f.HasToilet,
		HasSockets:     f.HasSockets,
		CanTakeCalls:   f.CanTakeCalls,
		CanPayWithCard: f.CanPayWithCard,
	}
}

// asSuggestion builds a Suggestion record from the form.
func (f *cafeForm) asSuggestion() models.Suggestion {
	return models.Suggestion{
		Name:           f.Name,
		MapURL:         f.MapURL,
		ImgURL:         f.ImgURL,
		Latitude:       f.Latitude,
		Longitude:      f.Longitude,
		Country:        f.Country,
		City:           f.City,
		Location:       f.Location,
		Description:    f.Description,
		Seats:          f.Seats,
		CoffeePrice:    f.CoffeePrice,
		Rating:         f.Rating(),
		HasWifi:        f.HasWifi,
		HasToilet:      f.HasToilet,
		HasSockets:     f.HasSockets,
		CanTakeCalls:   f.CanTakeCalls,
		CanPayWithCard: f.CanPayWithCard,
	}
}

// cafeFormFields is served on GET for the add/suggest forms so API clients
// know what to submit.
var cafeFormFields = gin.H{
	"fields": []string{
		"name", "map_url", "img_url", "latitude", "longitude",
		"country", "city", "location", "description",
		"seats", "coffee_price",
		"has_wifi", "has_toilet", "has_sockets", "can_take_calls", "can_pay_with_card",
	},
	"note": "amenity flags are checkboxes; rating is computed server-side",
}
