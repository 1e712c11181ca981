package webserver

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/svera/shareport/internal/webserver/controller/blob"
	"github.com/svera/shareport/internal/webserver/controller/collaboration"
	"github.com/svera/shareport/internal/webserver/controller/sharelink"
	"github.com/svera/shareport/internal/webserver/infrastructure"
	"github.com/svera/shareport/internal/webserver/model"
)

// Sender sends notification emails to collaborators
type Sender interface {
	Send(address, subject, body string) error
	From() string
}

type Controllers struct {
	ShareLinks               *sharelink.Controller
	Collaborations           *collaboration.Controller
	Blobs                    *blob.Controller
	RequireSessionMiddleware func(c *fiber.Ctx) error
	ErrorHandler             func(c *fiber.Ctx, err error) error
}

func SetupControllers(cfg Config, db *gorm.DB, blobs *infrastructure.BlobStore, sender Sender) Controllers {
	shareLinksRepository := &model.ShareLinkRepository{DB: db}
	collaborationsRepository := &model.CollaborationRepository{DB: db}
	usersRepository := &model.UserRepository{DB: db}
	resourcesRepository := &model.ResourceRepository{DB: db}

	shareLinksController := sharelink.NewController(
		shareLinksRepository,
		resourcesRepository,
		blobs,
		sharelink.Config{BaseURL: cfg.BaseURL},
	)

	collaborationsController := collaboration.NewController(
		collaborationsRepository,
		usersRepository,
		resourcesRepository,
		sender,
		collaboration.Config{BaseURL: cfg.BaseURL},
	)

	return Controllers{
		ShareLinks:               shareLinksController,
		Collaborations:           collaborationsController,
		Blobs:                    blob.NewController(blobs),
		RequireSessionMiddleware: RequireSession(cfg.JwtSecret),
		ErrorHandler:             errorHandler,
	}
}
