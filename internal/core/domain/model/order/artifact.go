package order

import (
	"fmt"
	"net/url"
	"time"

	"marketplace/internal/pkg/errs"
)

// ErrURLIsNotAbsolute indicates that a delivery link or artifact URL is not a
// syntactically well-formed absolute URL.
var ErrURLIsNotAbsolute = errs.NewValueIsInvalidError("URL must be absolute")

// Artifact is a value object describing one deliverable uploaded by the seller.
// The binary itself lives in an external artifact store; the order only keeps
// the URL and metadata triple returned by the upload.
//
// Artifact is immutable and validated on construction.
type Artifact struct {
	name       string
	url        string
	byteSize   int64
	mediaType  string
	uploadedAt time.Time
}

// NewArtifact creates a validated Artifact.
// The name is required, the URL must be absolute, and the byte size must not
// be negative. The media type is whatever the artifact store reported and is
// kept verbatim.
func NewArtifact(name, rawURL string, byteSize int64, mediaType string, uploadedAt time.Time) (Artifact, error) {
	if name == "" {
		return Artifact{}, errs.NewValueIsRequiredError("artifact name")
	}
	if err := validateAbsoluteURL(rawURL); err != nil {
		return Artifact{}, err
	}
	if byteSize < 0 {
		return Artifact{}, errs.NewValueIsInvalidErrorWithCause(
			"artifact byteSize", fmt.Errorf("%d is negative", byteSize))
	}
	if uploadedAt.IsZero() {
		return Artifact{}, errs.NewValueIsRequiredError("artifact uploadedAt")
	}

	return Artifact{
		name:       name,
		url:        rawURL,
		byteSize:   byteSize,
		mediaType:  mediaType,
		uploadedAt: uploadedAt,
	}, nil
}

// Name returns the display name of the deliverable.
func (a Artifact) Name() string {
	return a.name
}

// URL returns the external location of the deliverable.
func (a Artifact) URL() string {
	return a.url
}

// ByteSize returns the size reported by the artifact store.
func (a Artifact) ByteSize() int64 {
	return a.byteSize
}

// MediaType returns the media type reported by the artifact store.
func (a Artifact) MediaType() string {
	return a.mediaType
}

// UploadedAt returns when the deliverable was uploaded.
func (a Artifact) UploadedAt() time.Time {
	return a.uploadedAt
}

// validateAbsoluteURL checks that the value parses as an absolute URL with a host.
func validateAbsoluteURL(rawURL string) error {
	if rawURL == "" {
		return errs.NewValueIsRequiredError("URL")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("URL", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return ErrURLIsNotAbsolute
	}
	return nil
}
