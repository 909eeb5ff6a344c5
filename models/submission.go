package models

// SubmissionConfig carries the scalar try-on options selected by the user.
// All fields are optional at the wire level; unset values are sent as empty
// strings.
type SubmissionConfig struct {
	ModelType    string `json:"model_type"`   // top, bottom, full
	Gender       string `json:"gender"`       // male, female, unisex
	GarmentType  string `json:"garment_type"` // shirt, pants, jacket, dress, tshirt, shalwar_kameez
	Style        string `json:"style"`        // casual, formal, streetwear, traditional, sports
	Background   string `json:"background"`   // studio, nature, city, beach, indoors, fashion_runway
	Instructions string `json:"instructions"`
}

// DefaultSubmissionConfig returns the selections the form starts with
func DefaultSubmissionConfig() SubmissionConfig {
	return SubmissionConfig{
		ModelType:   "full",
		Gender:      "male",
		GarmentType: "shalwar_kameez",
		Style:       "traditional",
		Background:  "studio",
	}
}

// SubmissionRequest is a fully validated outbound try-on request: both
// artifacts plus the scalar config, snapshotted at build time.
type SubmissionRequest struct {
	PersonImage Artifact
	ClothImage  Artifact
	Config      SubmissionConfig
}
