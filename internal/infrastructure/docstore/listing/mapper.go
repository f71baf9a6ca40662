package listing

import (
	domain "webcars-api/internal/domain/listing"
	"webcars-api/internal/infrastructure/docstore"
)

func toFields(l *domain.Listing) map[string]any {
	images := make([]map[string]any, 0, len(l.Images))
	for _, img := range l.Images {
		images = append(images, map[string]any{
			"uid":  img.UID,
			"name": img.Name,
			"url":  img.URL,
		})
	}

	return map[string]any{
		"name":        l.Name,
		"model":       l.Model,
		"year":        l.Year,
		"km":          l.Km,
		"price":       l.Price,
		"city":        l.City,
		"description": l.Description,
		"whatsapp":    l.Whatsapp,
		"owner":       l.Owner,
		"uid":         l.UID,
		"created":     l.Created,
		"images":      images,
	}
}

func fromDocument(id string, fields map[string]any) (*domain.Listing, error) {
	l := &domain.Listing{ID: id}

	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"name", &l.Name},
		{"model", &l.Model},
		{"year", &l.Year},
		{"km", &l.Km},
		{"price", &l.Price},
		{"city", &l.City},
		{"description", &l.Description},
		{"whatsapp", &l.Whatsapp},
		{"owner", &l.Owner},
		{"uid", &l.UID},
	} {
		v, ok := docstore.String(fields, f.name)
		if !ok {
			return nil, &docstore.DecodeError{Collection: Collection, ID: id, Field: f.name, Want: "string"}
		}
		*f.dst = v
	}

	var ok bool
	if l.Created, ok = docstore.Time(fields, "created"); !ok {
		return nil, &docstore.DecodeError{Collection: Collection, ID: id, Field: "created", Want: "timestamp"}
	}

	images, ok := docstore.Maps(fields, "images")
	if !ok {
		return nil, &docstore.DecodeError{Collection: Collection, ID: id, Field: "images", Want: "sequence of image refs"}
	}
	l.Images = make([]domain.ImageRef, 0, len(images))
	for _, img := range images {
		var ref domain.ImageRef
		if ref.UID, ok = docstore.String(img, "uid"); !ok {
			return nil, &docstore.DecodeError{Collection: Collection, ID: id, Field: "images.uid", Want: "string"}
		}
		if ref.Name, ok = docstore.String(img, "name"); !ok {
			return nil, &docstore.DecodeError{Collection: Collection, ID: id, Field: "images.name", Want: "string"}
		}
		if ref.URL, ok = docstore.String(img, "url"); !ok {
			return nil, &docstore.DecodeError{Collection: Collection, ID: id, Field: "images.url", Want: "string"}
		}
		l.Images = append(l.Images, ref)
	}

	return l, nil
}
