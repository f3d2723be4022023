package application

import (
	"errors"
	"strconv"

	"github.com/dasomcenter/dasom-api/internal/domain/form"
	"github.com/dasomcenter/dasom-api/internal/domain/formspec"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"gorm.io/gorm"
)

var ErrFormNotFound = errors.New("form not found")

type FormService struct {
	Repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{Repos: repos}
}

// GetByProgram returns the program's form. A program that never had a form
// saved yields ErrFormNotFound so editors can tell it apart from a saved
// empty form; submission and rendering treat the same case as a form with
// no questions.
func (s *FormService) GetByProgram(programID uint) (formspec.FormSpec, error) {
	if _, err := s.Repos.Program.GetProgramByID(programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return formspec.FormSpec{}, ErrProgramNotFound
		}
		return formspec.FormSpec{}, err
	}

	rec, err := s.Repos.Form.GetFormByProgramID(programID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return formspec.FormSpec{}, ErrFormNotFound
	}
	if err != nil {
		return formspec.FormSpec{}, err
	}
	return rec.Spec()
}

// Save replaces the program's form with the payload. Fields carrying an id
// must exist in the stored form so ids stay stable; fields without one get
// fresh ids. The whole save is one transaction and the previous version is
// overwritten.
func (s *FormService) Save(programID uint, input form.SaveFormDTO) (formspec.FormSpec, error) {
	if _, err := s.Repos.Program.GetProgramByID(programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return formspec.FormSpec{}, ErrProgramNotFound
		}
		return formspec.FormSpec{}, err
	}

	stored, err := s.storedSpec(programID)
	if err != nil {
		return formspec.FormSpec{}, err
	}

	next := formspec.FormSpec{
		ProgramID:   strconv.FormatUint(uint64(programID), 10),
		Title:       input.Title,
		Description: input.Description,
	}
	for _, fp := range input.Fields {
		if fp.ID == "" {
			next, err = formspec.AddField(next, fp.FieldDraft)
		} else {
			if _, ok := stored.Field(fp.ID); !ok {
				return formspec.FormSpec{}, formspec.ErrFieldNotFound
			}
			next, err = formspec.AddExistingField(next, fp.ID, fp.FieldDraft)
		}
		if err != nil {
			return formspec.FormSpec{}, err
		}
	}
	if err := next.Validate(); err != nil {
		return formspec.FormSpec{}, err
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		rec, err := tx.Form.GetFormByProgramID(programID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		data, err := formspec.EncodeFields(next.Fields)
		if err != nil {
			return err
		}
		rec.ProgramID = programID
		rec.Title = next.Title
		rec.Description = next.Description
		rec.Fields = data
		return tx.Form.SaveForm(&rec)
	})
	if err != nil {
		return formspec.FormSpec{}, err
	}
	return next, nil
}

// storedSpec loads the saved form or an empty one when none exists yet.
func (s *FormService) storedSpec(programID uint) (formspec.FormSpec, error) {
	rec, err := s.Repos.Form.GetFormByProgramID(programID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return emptyForm(programID), nil
	}
	if err != nil {
		return formspec.FormSpec{}, err
	}
	return rec.Spec()
}

func emptyForm(programID uint) formspec.FormSpec {
	return formspec.FormSpec{
		ProgramID: strconv.FormatUint(uint64(programID), 10),
		Fields:    []formspec.FieldSpec{},
	}
}
