package dtos

import "errors"

type UploadUrlRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

var ErrMissingUploadFields = errors.New("missing required fields: filename and contentType")

func (r UploadUrlRequest) Validate() error {
	if r.Filename == "" || r.ContentType == "" {
		return ErrMissingUploadFields
	}
	return nil
}

type UploadUrlResponse struct {
	UploadUrl string `json:"uploadUrl"`
	Key       string `json:"key"`
}
