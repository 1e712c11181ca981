package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers) {
	// Anonymous capability endpoints: the share code or signed token is the
	// only credential
	app.Get("/share/:shareCode", controllers.ShareLinks.Get)
	app.Post("/share/:shareCode/access", controllers.ShareLinks.Access)
	app.Get("/blobs/:token", controllers.Blobs.Serve)

	// Everything below requires an authenticated caller
	app.Use(controllers.RequireSessionMiddleware)

	app.Post("/share-links", controllers.ShareLinks.Create)
	app.Get("/share-links", controllers.ShareLinks.List)
	app.Put("/share-links/:id", controllers.ShareLinks.Update)
	app.Delete("/share-links/:id", controllers.ShareLinks.Delete)

	app.Post("/collaborations", controllers.Collaborations.Invite)
	app.Post("/collaborations/accept/:inviteCode", controllers.Collaborations.Accept)
}
