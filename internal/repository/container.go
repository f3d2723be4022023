package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Category CategoryRepo
	Post     PostRepo
	Program  ProgramRepo
	Form     FormRepo
	Apply    ApplyRepo
	User     UserRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Category: NewCategoryRepo(db),
		Post:     NewPostRepo(db),
		Program:  NewProgramRepo(db),
		Form:     NewFormRepo(db),
		Apply:    NewApplyRepo(db),
		User:     NewUserRepo(db),
		db:       db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Category: r.Category.WithTx(tx),
		Post:     r.Post.WithTx(tx),
		Program:  r.Program.WithTx(tx),
		Form:     r.Form.WithTx(tx),
		Apply:    r.Apply.WithTx(tx),
		User:     r.User.WithTx(tx),
		db:       tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	// No db means mocked repos; run the function without a transaction.
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
