package pinning

import "errors"

var (
	ErrPresignFailed  = errors.New("failed to obtain upload url")
	ErrUploadFailed   = errors.New("upload failed")
	ErrNoCid          = errors.New("upload returned no cid")
	ErrUnknownBackend = errors.New("unknown pinning backend")
)
