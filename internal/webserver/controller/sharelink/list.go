package sharelink

import (
	"encoding/base64"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/svera/shareport/internal/webserver/model"
)

type listResponse struct {
	ShareLinks []linkResponse `json:"shareLinks"`
	Count      int            `json:"count"`
	NextToken  string         `json:"nextToken,omitempty"`
}

func (s *Controller) List(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	limit := c.QueryInt("limit", model.ResultsPerPage)
	offset, err := decodeNextToken(c.Query("nextToken"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid pagination token.")
	}

	resourceType := model.ResourceType(c.Query("resourceType"))
	if resourceType != "" && !resourceType.In(model.ShareableResourceTypes) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid resource type. Must be one of: file, folder, photo, album, resume.")
	}

	links, total, err := s.links.List(session.UserID, resourceType, c.Query("resourceId"), offset, limit)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	response := listResponse{
		ShareLinks: make([]linkResponse, 0, len(links)),
		Count:      len(links),
	}
	for _, link := range links {
		response.ShareLinks = append(response.ShareLinks, newLinkResponse(link, s.config.BaseURL))
	}
	if int64(offset+len(links)) < total {
		response.NextToken = encodeNextToken(offset + len(links))
	}

	return c.JSON(response)
}

func encodeNextToken(offset int) string {
	return base64.URLEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

func decodeNextToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	decoded, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, err
	}
	offset, err := strconv.Atoi(string(decoded))
	if err != nil {
		return 0, err
	}
	if offset < 0 {
		return 0, strconv.ErrRange
	}
	return offset, nil
}
