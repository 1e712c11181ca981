package blob

import (
	"github.com/spf13/afero"
)

type blobStore interface {
	Open(token string) (afero.File, string, error)
}

type Controller struct {
	blobs blobStore
}

func NewController(blobs blobStore) *Controller {
	return &Controller{blobs: blobs}
}
