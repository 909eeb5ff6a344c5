package models

// Artifact is a binary image payload ready for transmission
type Artifact struct {
	Bytes    []byte `json:"-"`
	MimeType string `json:"mime_type"`
	FileName string `json:"file_name"`
}

// IsZero reports whether the artifact holds no image
func (a Artifact) IsZero() bool {
	return len(a.Bytes) == 0
}
