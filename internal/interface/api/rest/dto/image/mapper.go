package image

import (
	"webcars-api/internal/domain/draft"
)

func ToResponseImage(iDomain draft.Image) Image {
	return Image{
		UID:       iDomain.UID,
		Name:      iDomain.Name,
		FileName:  iDomain.FileName,
		MimeType:  iDomain.MimeType,
		SizeBytes: iDomain.SizeBytes,
		URL:       iDomain.URL,
	}
}

func ToResponseImages(isDomain draft.Images) Images {
	imgs := make(Images, len(isDomain))
	for idx, img := range isDomain {
		imgs[idx] = ToResponseImage(*img)
	}

	return imgs
}
