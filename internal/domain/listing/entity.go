package listing

import (
	"time"
)

type (
	// ImageRef points at one uploaded image blob. Name is the blob key
	// under which the object is stored at images/{UID}/{Name}.
	ImageRef struct {
		UID  string
		Name string
		URL  string
	}

	// Listing is a car advertisement. Year, Km and Price stay strings:
	// they are free-form display values owned by the seller
	// ("2016/2016", "69.000").
	Listing struct {
		ID          string
		Name        string
		Model       string
		Year        string
		Km          string
		Price       string
		City        string
		Description string
		Whatsapp    string

		Owner   string
		UID     string
		Created time.Time

		Images []ImageRef
	}
	Listings []*Listing

	// Form holds the validated field values of the create-listing form.
	Form struct {
		Name        string
		Model       string
		Year        string
		Km          string
		Price       string
		City        string
		Description string
		Whatsapp    string
	}
)
