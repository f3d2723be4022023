package application

import (
	"github.com/dasomcenter/dasom-api/internal/repository"
)

type Services struct {
	Category *CategoryService
	Post     *PostService
	Program  *ProgramService
	Form     *FormService
	Apply    *ApplyService
	User     *UserService
	Upload   *UploadService
}

func New(repos *repository.Repos, store ObjectStore) *Services {
	return &Services{
		Category: NewCategoryService(repos),
		Post:     NewPostService(repos),
		Program:  NewProgramService(repos),
		Form:     NewFormService(repos),
		Apply:    NewApplyService(repos),
		User:     NewUserService(repos),
		Upload:   NewUploadService(repos, store),
	}
}
