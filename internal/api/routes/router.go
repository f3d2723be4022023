package routes

import (
	"github.com/dasomcenter/dasom-api/internal/api/handlers"
	"github.com/dasomcenter/dasom-api/internal/api/middleware"
	"github.com/dasomcenter/dasom-api/internal/application"
	"github.com/dasomcenter/dasom-api/internal/config/db"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store application.ObjectStore) {
	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, store)
	h := handlers.New(services, r)

	// --- Public site ---
	r.POST("/login", h.Auth.Login)
	r.GET("/categories", h.Category.Tree)
	r.GET("/posts", h.Post.List)
	r.GET("/posts/:id", h.Post.Get)
	r.GET("/programs", h.Program.List)
	r.GET("/programs/:id", h.Program.Get)
	r.GET("/programs/:id/form", h.Form.Get)
	r.POST("/programs/:id/applications", h.Application.Submit)
	r.POST("/programs/:id/uploads", h.Upload.Upload)

	// --- Staff area ---
	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.Auth.Me)
		auth.GET("/ws/programs/:id/applications", h.Application.Stream)

		// Staff accounts are read-only on the admin API.
		staff := auth.Group("/admin")
		{
			staff.GET("/posts", h.Post.ListAll)
			staff.GET("/posts/:id", h.Post.GetAny)
			staff.GET("/programs", h.Program.ListAll)
			staff.GET("/programs/:id", h.Program.GetAny)
			staff.GET("/programs/:id/applications", h.Application.List)
			staff.GET("/applications/:id", h.Application.Get)
			staff.GET("/uploads/url", h.Upload.DownloadURL)
		}

		admin := auth.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/users", h.Auth.Register)
			admin.GET("/users", h.Auth.ListUsers)
			admin.PUT("/users/:id", h.Auth.UpdateUser)
			admin.DELETE("/users/:id", h.Auth.DeleteUser)

			admin.POST("/categories", h.Category.Create)
			admin.PUT("/categories/:id", h.Category.Update)
			admin.DELETE("/categories/:id", h.Category.Delete)

			admin.POST("/posts", h.Post.Create)
			admin.PUT("/posts/:id", h.Post.Update)
			admin.DELETE("/posts/:id", h.Post.Delete)

			admin.POST("/programs", h.Program.Create)
			admin.PUT("/programs/:id", h.Program.Update)
			admin.DELETE("/programs/:id", h.Program.Delete)

			admin.PUT("/programs/:id/form", h.Form.Save)
			admin.POST("/applications/:id/review", h.Application.Review)
		}
	}
}
