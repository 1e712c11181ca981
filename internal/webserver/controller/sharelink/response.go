package sharelink

import (
	"fmt"
	"strings"
	"time"

	"github.com/svera/shareport/internal/webserver/model"
)

// linkResponse is the owner-facing representation of a share link. The
// password never leaves the server, only whether one is set.
type linkResponse struct {
	ID                string             `json:"id"`
	UserID            string             `json:"userId"`
	ShareCode         string             `json:"shareCode"`
	ResourceType      model.ResourceType `json:"resourceType"`
	ResourceID        string             `json:"resourceId"`
	ExpiresAt         *time.Time         `json:"expiresAt"`
	PasswordProtected bool               `json:"passwordProtected"`
	AllowDownload     bool               `json:"allowDownload"`
	AccessCount       int64              `json:"accessCount"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
	ShareURL          string             `json:"shareUrl"`
}

// accessedLink is the trimmed projection returned to anonymous visitors
type accessedLink struct {
	ID            string             `json:"id"`
	ShareCode     string             `json:"shareCode"`
	ResourceType  model.ResourceType `json:"resourceType"`
	ResourceID    string             `json:"resourceId"`
	ExpiresAt     *time.Time         `json:"expiresAt"`
	AllowDownload bool               `json:"allowDownload"`
	AccessCount   int64              `json:"accessCount"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type accessResponse struct {
	ShareLink    accessedLink    `json:"shareLink"`
	Resource     *model.Resource `json:"resource"`
	PresignedURL string          `json:"presignedUrl,omitempty"`
}

func newLinkResponse(link model.ShareLink, baseURL string) linkResponse {
	return linkResponse{
		ID:                link.ID,
		UserID:            link.UserID,
		ShareCode:         link.ShareCode,
		ResourceType:      link.ResourceType,
		ResourceID:        link.ResourceID,
		ExpiresAt:         link.ExpiresAt,
		PasswordProtected: link.PasswordProtected(),
		AllowDownload:     link.AllowDownload,
		AccessCount:       link.AccessCount,
		CreatedAt:         link.CreatedAt,
		UpdatedAt:         link.UpdatedAt,
		ShareURL:          shareURL(baseURL, link.ShareCode),
	}
}

func newAccessedLink(link model.ShareLink) accessedLink {
	return accessedLink{
		ID:            link.ID,
		ShareCode:     link.ShareCode,
		ResourceType:  link.ResourceType,
		ResourceID:    link.ResourceID,
		ExpiresAt:     link.ExpiresAt,
		AllowDownload: link.AllowDownload,
		AccessCount:   link.AccessCount,
		CreatedAt:     link.CreatedAt,
	}
}

func shareURL(baseURL, code string) string {
	return fmt.Sprintf("%s/share/%s", baseURL, code)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
