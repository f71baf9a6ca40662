package image

type (
	Image struct {
		UID       string `json:"uid"`
		Name      string `json:"name"`
		FileName  string `json:"file_name"`
		MimeType  string `json:"mime_type"`
		SizeBytes uint64 `json:"size_bytes"`
		URL       string `json:"url"`
	}
	Images       []Image
	ResponseData struct {
		Data Images `json:"data"`
	}
)
