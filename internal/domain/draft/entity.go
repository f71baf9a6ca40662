package draft

type (
	// Image is one uploaded image accumulated in a user's draft before
	// the listing is submitted. Name is the locally generated blob key,
	// URL the resolved download URL. FileName, MimeType and SizeBytes
	// describe the original upload.
	Image struct {
		UID       string
		Name      string
		FileName  string
		MimeType  string
		SizeBytes uint64
		URL       string
	}
	Images []*Image
)
