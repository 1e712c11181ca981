package webserver_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/svera/shareport/internal/webserver/infrastructure"
	"github.com/svera/shareport/internal/webserver/model"
	"gorm.io/gorm"
)

func TestUpdateShareLink(t *testing.T) {
	var (
		db    *gorm.DB
		app   *fiber.App
		owner model.User
		other model.User
		link  linkResponse
	)

	reset := func(payload map[string]any) {
		t.Helper()

		db = infrastructure.Connect(":memory:")
		app = bootstrapApp(db, &infrastructure.NoEmail{}, afero.NewMemMapFs())
		owner = seedUser(db, "owner@example.com", "Owner", t)
		other = seedUser(db, "other@example.com", "Other", t)

		folder := seedFolder(db, owner.ID, "Holidays", t)
		payload["resourceType"] = "folder"
		payload["resourceId"] = folder.ID

		response := jsonRequest(http.MethodPost, "/share-links", bearerToken(owner.ID, owner.Email, t), payload, app, t)
		mustReturnStatus(response, fiber.StatusCreated, t)
		decodeResponse(response, &link, t)
	}

	t.Run("Return not found for an unknown link", func(t *testing.T) {
		reset(map[string]any{})

		response := jsonRequest(http.MethodPut, "/share-links/missing", bearerToken(owner.ID, owner.Email, t),
			map[string]any{"allowDownload": false}, app, t)

		mustReturnStatus(response, fiber.StatusNotFound, t)
	})

	t.Run("Refuse updates from anyone but the owner", func(t *testing.T) {
		reset(map[string]any{})

		response := jsonRequest(http.MethodPut, "/share-links/"+link.ID, bearerToken(other.ID, other.Email, t),
			map[string]any{"allowDownload": false}, app, t)

		mustReturnStatus(response, fiber.StatusForbidden, t)

		var stored model.ShareLink
		if result := db.First(&stored, "id = ?", link.ID); result.Error != nil {
			t.Fatalf("Unexpected error: %v", result.Error.Error())
		}
		if !stored.AllowDownload {
			t.Error("Link was modified by a forbidden update")
		}
	})

	t.Run("Leave absent fields unchanged", func(t *testing.T) {
		expiry := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
		reset(map[string]any{"expiresAt": expiry, "password": "hunter2"})

		response := jsonRequest(http.MethodPut, "/share-links/"+link.ID, bearerToken(owner.ID, owner.Email, t),
			map[string]any{"allowDownload": false}, app, t)
		mustReturnStatus(response, fiber.StatusOK, t)

		var updated linkResponse
		decodeResponse(response, &updated, t)

		if updated.AllowDownload {
			t.Error("Download flag was not updated")
		}
		if !updated.PasswordProtected {
			t.Error("Password was cleared by an unrelated update")
		}
		if updated.ExpiresAt == nil || !updated.ExpiresAt.Equal(expiry) {
			t.Errorf("Expiry was changed by an unrelated update: %v", updated.ExpiresAt)
		}
	})

	t.Run("Clear the expiry with an explicit null", func(t *testing.T) {
		reset(map[string]any{"expiresAt": time.Now().UTC().Add(24 * time.Hour)})

		response := jsonRequest(http.MethodPut, "/share-links/"+link.ID, bearerToken(owner.ID, owner.Email, t),
			map[string]any{"expiresAt": nil}, app, t)
		mustReturnStatus(response, fiber.StatusOK, t)

		var updated linkResponse
		decodeResponse(response, &updated, t)

		if updated.ExpiresAt != nil {
			t.Errorf("Expiry was not cleared: %v", updated.ExpiresAt)
		}
	})

	t.Run("Remove the password with an empty string", func(t *testing.T) {
		reset(map[string]any{"password": "hunter2"})

		response := jsonRequest(http.MethodPut, "/share-links/"+link.ID, bearerToken(owner.ID, owner.Email, t),
			map[string]any{"password": ""}, app, t)
		mustReturnStatus(response, fiber.StatusOK, t)

		var updated linkResponse
		decodeResponse(response, &updated, t)

		if updated.PasswordProtected {
			t.Error("Password was not removed")
		}

		accessResponse := jsonRequest(http.MethodPost, "/share/"+link.ShareCode+"/access", "", nil, app, t)
		mustReturnStatus(accessResponse, fiber.StatusOK, t)
	})

	t.Run("Protect an open link with a new password", func(t *testing.T) {
		reset(map[string]any{})

		response := jsonRequest(http.MethodPut, "/share-links/"+link.ID, bearerToken(owner.ID, owner.Email, t),
			map[string]any{"password": "hunter2"}, app, t)
		mustReturnStatus(response, fiber.StatusOK, t)

		var updated linkResponse
		decodeResponse(response, &updated, t)

		if !updated.PasswordProtected {
			t.Error("Password was not set")
		}

		accessResponse := jsonRequest(http.MethodPost, "/share/"+link.ShareCode+"/access", "", nil, app, t)
		mustReturnStatus(accessResponse, fiber.StatusUnauthorized, t)
	})
}

func TestDeleteShareLink(t *testing.T) {
	var (
		db    *gorm.DB
		app   *fiber.App
		owner model.User
		other model.User
		link  linkResponse
	)

	reset := func() {
		t.Helper()

		db = infrastructure.Connect(":memory:")
		app = bootstrapApp(db, &infrastructure.NoEmail{}, afero.NewMemMapFs())
		owner = seedUser(db, "owner@example.com", "Owner", t)
		other = seedUser(db, "other@example.com", "Other", t)

		folder := seedFolder(db, owner.ID, "Holidays", t)
		response := jsonRequest(http.MethodPost, "/share-links", bearerToken(owner.ID, owner.Email, t),
			map[string]any{"resourceType": "folder", "resourceId": folder.ID}, app, t)
		mustReturnStatus(response, fiber.StatusCreated, t)
		decodeResponse(response, &link, t)
	}

	t.Run("Return not found for an unknown link", func(t *testing.T) {
		reset()

		response := jsonRequest(http.MethodDelete, "/share-links/missing", bearerToken(owner.ID, owner.Email, t), nil, app, t)

		mustReturnStatus(response, fiber.StatusNotFound, t)
	})

	t.Run("Refuse deletion from anyone but the owner", func(t *testing.T) {
		reset()

		response := jsonRequest(http.MethodDelete, "/share-links/"+link.ID, bearerToken(other.ID, other.Email, t), nil, app, t)

		mustReturnStatus(response, fiber.StatusForbidden, t)
	})

	t.Run("Revoke the capability on deletion", func(t *testing.T) {
		reset()

		response := jsonRequest(http.MethodDelete, "/share-links/"+link.ID, bearerToken(owner.ID, owner.Email, t), nil, app, t)
		mustReturnStatus(response, fiber.StatusOK, t)

		var body struct {
			Message string `json:"message"`
		}
		decodeResponse(response, &body, t)
		if body.Message != "Share link deleted successfully" {
			t.Errorf("Wrong message received: %s", body.Message)
		}

		anonymous := jsonRequest(http.MethodGet, "/share/"+link.ShareCode, "", nil, app, t)
		mustReturnStatus(anonymous, fiber.StatusNotFound, t)
	})
}

func TestListShareLinks(t *testing.T) {
	var (
		db    *gorm.DB
		app   *fiber.App
		owner model.User
		other model.User
	)

	type listResponse struct {
		ShareLinks []linkResponse `json:"shareLinks"`
		Count      int            `json:"count"`
		NextToken  string         `json:"nextToken"`
	}

	reset := func() {
		t.Helper()

		db = infrastructure.Connect(":memory:")
		app = bootstrapApp(db, &infrastructure.NoEmail{}, afero.NewMemMapFs())
		owner = seedUser(db, "owner@example.com", "Owner", t)
		other = seedUser(db, "other@example.com", "Other", t)
	}

	createLink := func(user model.User, payload map[string]any, t *testing.T) linkResponse {
		t.Helper()

		response := jsonRequest(http.MethodPost, "/share-links", bearerToken(user.ID, user.Email, t), payload, app, t)
		mustReturnStatus(response, fiber.StatusCreated, t)

		var link linkResponse
		decodeResponse(response, &link, t)
		return link
	}

	t.Run("Only list the caller's links", func(t *testing.T) {
		reset()

		ownFolder := seedFolder(db, owner.ID, "Holidays", t)
		otherFolder := seedFolder(db, other.ID, "Work", t)
		createLink(owner, map[string]any{"resourceType": "folder", "resourceId": ownFolder.ID}, t)
		createLink(other, map[string]any{"resourceType": "folder", "resourceId": otherFolder.ID}, t)

		response := jsonRequest(http.MethodGet, "/share-links", bearerToken(owner.ID, owner.Email, t), nil, app, t)
		mustReturnStatus(response, fiber.StatusOK, t)

		var list listResponse
		decodeResponse(response, &list, t)

		if list.Count != 1 {
			t.Fatalf("Wrong number of links, expected 1, got %d", list.Count)
		}
		if list.ShareLinks[0].UserID != owner.ID {
			t.Errorf("Received a link belonging to %s", list.ShareLinks[0].UserID)
		}
	})

	t.Run("Filter by resource", func(t *testing.T) {
		reset()

		folder := seedFolder(db, owner.ID, "Holidays", t)
		file := seedFile(db, owner.ID, "report.pdf", "blobs/report.pdf", t)
		createLink(owner, map[string]any{"resourceType": "folder", "resourceId": folder.ID}, t)
		createLink(owner, map[string]any{"resourceType": "file", "resourceId": file.ID}, t)

		response := jsonRequest(http.MethodGet, "/share-links?resourceType=file", bearerToken(owner.ID, owner.Email, t), nil, app, t)
		mustReturnStatus(response, fiber.StatusOK, t)

		var list listResponse
		decodeResponse(response, &list, t)

		if list.Count != 1 {
			t.Fatalf("Wrong number of links, expected 1, got %d", list.Count)
		}
		if list.ShareLinks[0].ResourceType != "file" {
			t.Errorf("Wrong resource type received: %s", list.ShareLinks[0].ResourceType)
		}
	})

	t.Run("Reject an unknown resource type filter", func(t *testing.T) {
		reset()

		response := jsonRequest(http.MethodGet, "/share-links?resourceType=playlist", bearerToken(owner.ID, owner.Email, t), nil, app, t)

		mustReturnStatus(response, fiber.StatusBadRequest, t)
	})

	t.Run("Reject a malformed pagination token", func(t *testing.T) {
		reset()

		response := jsonRequest(http.MethodGet, "/share-links?nextToken=not-base64!", bearerToken(owner.ID, owner.Email, t), nil, app, t)

		mustReturnStatus(response, fiber.StatusBadRequest, t)
	})

	t.Run("Page through links with the opaque token", func(t *testing.T) {
		reset()

		folder := seedFolder(db, owner.ID, "Holidays", t)
		for i := 0; i < 5; i++ {
			createLink(owner, map[string]any{"resourceType": "folder", "resourceId": folder.ID}, t)
		}

		seen := map[string]bool{}
		token := bearerToken(owner.ID, owner.Email, t)
		url := "/share-links?limit=2"
		pages := 0

		for {
			response := jsonRequest(http.MethodGet, url, token, nil, app, t)
			mustReturnStatus(response, fiber.StatusOK, t)

			var list listResponse
			decodeResponse(response, &list, t)

			pages++
			for _, link := range list.ShareLinks {
				if seen[link.ID] {
					t.Fatalf("Link %s appeared on more than one page", link.ID)
				}
				seen[link.ID] = true
			}
			if list.NextToken == "" {
				break
			}
			url = "/share-links?limit=2&nextToken=" + list.NextToken
		}

		if pages != 3 {
			t.Errorf("Wrong number of pages, expected 3, got %d", pages)
		}
		if len(seen) != 5 {
			t.Errorf("Wrong number of links paged through, expected 5, got %d", len(seen))
		}
	})
}
