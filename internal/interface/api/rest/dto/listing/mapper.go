package listing

import (
	domain "webcars-api/internal/domain/listing"
)

func ToDomainForm(f Form) domain.Form {
	return domain.Form{
		Name:        f.Name,
		Model:       f.Model,
		Year:        f.Year,
		Km:          f.Km,
		Price:       f.Price,
		City:        f.City,
		Description: f.Description,
		Whatsapp:    f.Whatsapp,
	}
}

func ToSummary(lDomain domain.Listing) Summary {
	s := Summary{
		ID:    lDomain.ID,
		Name:  lDomain.Name,
		Year:  lDomain.Year,
		Km:    lDomain.Km,
		Price: lDomain.Price,
		City:  lDomain.City,
		UID:   lDomain.UID,
	}

	// Every persisted listing has at least one image; this is a document
	// precondition, not re-validated here.
	if len(lDomain.Images) > 0 {
		s.Cover = lDomain.Images[0].URL
	}

	return s
}

func ToSummaries(lsDomain domain.Listings) Summaries {
	ss := make(Summaries, len(lsDomain))
	for idx, l := range lsDomain {
		ss[idx] = ToSummary(*l)
	}

	return ss
}

func ToDetail(lDomain domain.Listing, sliderPerView int) Detail {
	images := make([]Image, len(lDomain.Images))
	for idx, img := range lDomain.Images {
		images[idx] = Image{
			UID:  img.UID,
			Name: img.Name,
			URL:  img.URL,
		}
	}

	return Detail{
		ID:            lDomain.ID,
		Name:          lDomain.Name,
		Model:         lDomain.Model,
		Year:          lDomain.Year,
		Km:            lDomain.Km,
		Price:         lDomain.Price,
		City:          lDomain.City,
		Description:   lDomain.Description,
		Whatsapp:      lDomain.Whatsapp,
		Owner:         lDomain.Owner,
		UID:           lDomain.UID,
		Created:       lDomain.Created,
		Images:        images,
		SliderPerView: sliderPerView,
	}
}
