package collaboration

import (
	"time"

	"github.com/svera/shareport/internal/webserver/model"
)

type collaborationsRepository interface {
	CreateWithUniqueCode(collaboration *model.Collaboration) error
	FindByInviteCode(code string) (*model.Collaboration, error)
	Exists(resourceType model.ResourceType, resourceID, collaboratorID string) (bool, error)
	Accept(collaboration *model.Collaboration, userID string) error
}

type usersRepository interface {
	FindByID(id string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
}

type resourcesRepository interface {
	Find(resourceType model.ResourceType, id string) (*model.Resource, error)
}

type Sender interface {
	Send(address, subject, body string) error
	From() string
}

type Config struct {
	BaseURL string
}

type Controller struct {
	collaborations collaborationsRepository
	users          usersRepository
	resources      resourcesRepository
	sender         Sender
	config         Config
}

func NewController(collaborations collaborationsRepository, users usersRepository, resources resourcesRepository, sender Sender, cfg Config) *Controller {
	return &Controller{
		collaborations: collaborations,
		users:          users,
		resources:      resources,
		sender:         sender,
		config:         cfg,
	}
}

type inviteResponse struct {
	ID                string             `json:"id"`
	OwnerID           string             `json:"ownerId"`
	CollaboratorID    *string            `json:"collaboratorId"`
	CollaboratorEmail string             `json:"collaboratorEmail"`
	ResourceType      model.ResourceType `json:"resourceType"`
	ResourceID        string             `json:"resourceId"`
	Permissions       string             `json:"permissions"`
	Status            string             `json:"status"`
	InviteCode        string             `json:"inviteCode"`
	Message           string             `json:"message"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
	InviteURL         string             `json:"inviteUrl,omitempty"`
}

func newInviteResponse(collaboration model.Collaboration, inviteURL string) inviteResponse {
	return inviteResponse{
		ID:                collaboration.ID,
		OwnerID:           collaboration.OwnerID,
		CollaboratorID:    collaboration.CollaboratorID,
		CollaboratorEmail: collaboration.CollaboratorEmail,
		ResourceType:      collaboration.ResourceType,
		ResourceID:        collaboration.ResourceID,
		Permissions:       collaboration.Permissions,
		Status:            collaboration.Status,
		InviteCode:        collaboration.InviteCode,
		Message:           collaboration.Message,
		CreatedAt:         collaboration.CreatedAt,
		UpdatedAt:         collaboration.UpdatedAt,
		InviteURL:         inviteURL,
	}
}
