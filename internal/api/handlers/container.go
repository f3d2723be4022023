package handlers

import (
	"github.com/dasomcenter/dasom-api/internal/application"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth        *AuthHandler
	Category    *CategoryHandler
	Post        *PostHandler
	Program     *ProgramHandler
	Form        *FormHandler
	Application *ApplicationHandler
	Upload      *UploadHandler
	Router      *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(svc.User),
		Category:    NewCategoryHandler(svc.Category),
		Post:        NewPostHandler(svc.Post),
		Program:     NewProgramHandler(svc.Program),
		Form:        NewFormHandler(svc.Form),
		Application: NewApplicationHandler(svc.Apply),
		Upload:      NewUploadHandler(svc.Upload),
		Router:      router,
	}
}
