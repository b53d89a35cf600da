package domain

import (
	"context"
)

// FileDownloadRequest tracks an in-flight download so it can be abandoned.
type FileDownloadRequest struct {
	Filename string
	cancel   context.CancelFunc
}

// NewFileDownloadRequest pairs a filename with the cancel func of its download.
func NewFileDownloadRequest(filename string, cancel context.CancelFunc) FileDownloadRequest {
	return FileDownloadRequest{Filename: filename, cancel: cancel}
}

// Cancel abandons the download. It is safe to call more than once.
func (r FileDownloadRequest) Cancel() {
	if r.cancel != nil {
		r.cancel()
	}
}
