package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	// Gated areas. Everything under /admin and /my-profile passes the gate
	// first; all other routes are ungated.
	app.Use("/admin", handler.AdminGate)
	app.Use("/my-profile", handler.ProfileGate)

	app.Get("/admin/login", handler.ShowAdminLogin)
	app.Get("/admin", handler.ShowAdminDashboard)
	app.Get("/my-profile", handler.ShowMyProfile)

	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Get("/login", handler.WhoAmI)
	auth.Delete("/login", handler.Logout)

	users := api.Group("/users")
	users.Get("", handler.ListAccounts)
	users.Post("", handler.CreateAccount)
	users.Get("/:id", handler.GetAccount)
	users.Put("/:id", handler.UpdateAccount)
	users.Delete("/:id", handler.DeleteAccount)

	members := api.Group("/members")
	members.Get("", handler.ListMembers)
	members.Post("", handler.CreateMember)
	members.Get("/:id", handler.GetMember)
	members.Put("/:id", handler.UpdateMember)
	members.Delete("/:id", handler.DeleteMember)

	publications := api.Group("/publications")
	publications.Get("", handler.ListPublications)
	publications.Post("", handler.CreatePublication)
	publications.Put("/:id", handler.UpdatePublication)
	publications.Delete("/:id", handler.DeletePublication)

	news := api.Group("/news")
	news.Get("", handler.ListNews)
	news.Post("", handler.CreateNews)
	news.Put("/:id", handler.UpdateNews)
	news.Delete("/:id", handler.DeleteNews)

	albums := api.Group("/albums")
	albums.Get("", handler.ListAlbums)
	albums.Post("", handler.CreateAlbum)
	albums.Put("/:id", handler.UpdateAlbum)
	albums.Delete("/:id", handler.DeleteAlbum)

	resources := api.Group("/resources")
	resources.Get("", handler.ListResources)
	resources.Post("", handler.CreateResource)
	resources.Put("/:id", handler.UpdateResource)
	resources.Delete("/:id", handler.DeleteResource)

	api.Get("/homepage", handler.GetHomepage)
	api.Put("/homepage", handler.UpdateHomepage)

	api.Get("/settings", handler.ListSettings)
	api.Post("/settings", handler.UpsertSetting)
}
