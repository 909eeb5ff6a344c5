package models

// Result represents one completed virtual try-on. Immutable once created.
type Result struct {
	ID          int64  `json:"id"`
	ResultImage string `json:"result_image"`
	Text        string `json:"text"`
	Timestamp   string `json:"timestamp"`
}
