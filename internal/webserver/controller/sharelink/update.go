package sharelink

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/svera/shareport/internal/webserver/model"
)

// updateRequest distinguishes fields that were absent from the payload
// (leave unchanged) from fields explicitly set to null (clear)
type updateRequest struct {
	expiresAt     *time.Time
	clearExpiry   bool
	password      *string
	allowDownload *bool
}

func parseUpdateRequest(body []byte) (updateRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return updateRequest{}, err
	}

	var request updateRequest
	if raw, ok := fields["expiresAt"]; ok {
		if string(raw) == "null" {
			request.clearExpiry = true
		} else {
			var value time.Time
			if err := json.Unmarshal(raw, &value); err != nil {
				return updateRequest{}, err
			}
			utc := value.UTC()
			request.expiresAt = &utc
		}
	}
	if raw, ok := fields["password"]; ok {
		value := ""
		if string(raw) != "null" {
			if err := json.Unmarshal(raw, &value); err != nil {
				return updateRequest{}, err
			}
		}
		request.password = &value
	}
	if raw, ok := fields["allowDownload"]; ok {
		var value bool
		if err := json.Unmarshal(raw, &value); err != nil {
			return updateRequest{}, err
		}
		request.allowDownload = &value
	}
	return request, nil
}

func (s *Controller) Update(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	link, err := s.links.FindByID(c.Params("id"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if link == nil {
		return fiber.NewError(fiber.StatusNotFound, "Share link not found.")
	}
	if link.UserID != session.UserID {
		return fiber.NewError(fiber.StatusForbidden, "You do not have permission to update this share link.")
	}

	request, err := parseUpdateRequest(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload.")
	}

	if request.clearExpiry {
		link.ExpiresAt = nil
	}
	if request.expiresAt != nil {
		link.ExpiresAt = request.expiresAt
	}
	if request.password != nil {
		link.Password = ""
		if *request.password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*request.password), bcrypt.DefaultCost)
			if err != nil {
				return fiber.ErrInternalServerError
			}
			link.Password = string(hash)
		}
	}
	if request.allowDownload != nil {
		link.AllowDownload = *request.allowDownload
	}

	if err := s.links.Save(link); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(newLinkResponse(*link, s.config.BaseURL))
}
