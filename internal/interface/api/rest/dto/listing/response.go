package listing

import (
	"time"
)

type (
	Image struct {
		UID  string `json:"uid"`
		Name string `json:"name"`
		URL  string `json:"url"`
	}

	// Summary is a feed item: enough to render a listing card with its
	// cover image.
	Summary struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Year  string `json:"year"`
		Km    string `json:"km"`
		Price string `json:"price"`
		City  string `json:"city"`
		UID   string `json:"uid"`
		Cover string `json:"cover"`
	}
	Summaries []Summary

	Detail struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Model         string    `json:"model"`
		Year          string    `json:"year"`
		Km            string    `json:"km"`
		Price         string    `json:"price"`
		City          string    `json:"city"`
		Description   string    `json:"description"`
		Whatsapp      string    `json:"whatsapp"`
		Owner         string    `json:"owner"`
		UID           string    `json:"uid"`
		Created       time.Time `json:"created"`
		Images        []Image   `json:"images"`
		SliderPerView int       `json:"slider_per_view"`
	}

	ResponseData struct {
		Data Summaries `json:"data"`
	}
)
