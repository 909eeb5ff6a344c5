package tryon

import (
	"errors"

	"github.com/raushankrgupta/tryon-studio/models"
)

// ErrMissingImages is returned when a submission is attempted before both
// slots hold an artifact. The check happens before any network interaction.
var ErrMissingImages = errors.New("both person and cloth images are required")

// BuildSubmission validates and packages an outbound try-on request. The
// artifacts and config are snapshotted verbatim; edits made while a request
// is in flight only affect the next submission.
func BuildSubmission(person, cloth models.Artifact, cfg models.SubmissionConfig) (*models.SubmissionRequest, error) {
	if person.IsZero() || cloth.IsZero() {
		return nil, ErrMissingImages
	}

	return &models.SubmissionRequest{
		PersonImage: person,
		ClothImage:  cloth,
		Config:      cfg,
	}, nil
}
