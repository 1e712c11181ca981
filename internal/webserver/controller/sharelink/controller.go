package sharelink

import (
	"github.com/svera/shareport/internal/webserver/model"
)

type shareLinksRepository interface {
	CreateWithUniqueCode(link *model.ShareLink) error
	FindByCode(code string) (*model.ShareLink, error)
	FindByID(id string) (*model.ShareLink, error)
	Save(link *model.ShareLink) error
	Delete(id string) error
	List(userID string, resourceType model.ResourceType, resourceID string, offset, limit int) ([]model.ShareLink, int64, error)
	IncrementAccessCount(id string) (int64, error)
}

type resourcesRepository interface {
	Find(resourceType model.ResourceType, id string) (*model.Resource, error)
}

type blobStore interface {
	SignedURL(key, attachmentName string) (string, error)
}

type Config struct {
	BaseURL string
}

type Controller struct {
	links     shareLinksRepository
	resources resourcesRepository
	blobs     blobStore
	config    Config
}

func NewController(links shareLinksRepository, resources resourcesRepository, blobs blobStore, cfg Config) *Controller {
	return &Controller{
		links:     links,
		resources: resources,
		blobs:     blobs,
		config:    cfg,
	}
}
