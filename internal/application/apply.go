package application

import (
	"errors"
	"time"

	"github.com/dasomcenter/dasom-api/internal/domain/apply"
	"github.com/dasomcenter/dasom-api/internal/domain/formspec"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplyService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewApplyService(repos *repository.Repos) *ApplyService {
	return &ApplyService{Repos: repos, now: time.Now}
}

// Submit validates and stores one application. Consent is checked before
// answers so a missing checkbox never surfaces as field errors. Answer
// validation failures come back as *formspec.ValidationError.
func (s *ApplyService) Submit(programID uint, input apply.SubmitApplicationDTO) (apply.Application, error) {
	if !input.PortraitConsent || !input.PrivacyConsent {
		return apply.Application{}, apply.ErrConsentRequired
	}

	prg, err := s.Repos.Program.GetProgramByID(programID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apply.Application{}, ErrProgramNotFound
	}
	if err != nil {
		return apply.Application{}, err
	}
	if !prg.AcceptingAt(s.now()) {
		return apply.Application{}, apply.ErrNotAccepting
	}
	if prg.Capacity > 0 {
		taken, err := s.Repos.Apply.CountByProgram(programID)
		if err != nil {
			return apply.Application{}, err
		}
		if taken >= int64(prg.Capacity) {
			return apply.Application{}, apply.ErrProgramFull
		}
	}

	spec, err := s.formSpec(programID)
	if err != nil {
		return apply.Application{}, err
	}

	resp, fieldErrs := formspec.Collect(spec, input.Answers)
	if len(fieldErrs) > 0 {
		return apply.Application{}, &formspec.ValidationError{Fields: fieldErrs}
	}

	answers, err := resp.Encode()
	if err != nil {
		return apply.Application{}, err
	}

	a := apply.Application{
		ProgramID:       programID,
		ApplicantName:   input.Name,
		ApplicantEmail:  input.Email,
		ApplicantPhone:  input.Phone,
		PortraitConsent: input.PortraitConsent,
		PrivacyConsent:  input.PrivacyConsent,
		Answers:         datatypes.JSON(answers),
	}
	return a, s.Repos.Apply.CreateApplication(&a)
}

func (s *ApplyService) ListByProgram(programID uint, page, limit int) ([]apply.Application, int64, error) {
	if _, err := s.Repos.Program.GetProgramByID(programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrProgramNotFound
		}
		return nil, 0, err
	}
	return s.Repos.Apply.ListApplicationsByProgram(programID, page, limit)
}

// ListSince returns applications created after the given id, oldest first.
// The websocket stream polls through this.
func (s *ApplyService) ListSince(programID uint, afterID uint) ([]apply.Application, error) {
	return s.Repos.Apply.ListApplicationsSince(programID, afterID)
}

// Get returns the stored application together with its answers rendered
// against the program's current form. Fields deleted since submission still
// show up from the stored response.
func (s *ApplyService) Get(id uint) (apply.Application, []formspec.DisplayItem, error) {
	a, err := s.Repos.Apply.GetApplicationByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apply.Application{}, nil, ErrApplicationNotFound
	}
	if err != nil {
		return apply.Application{}, nil, err
	}

	spec, err := s.formSpec(a.ProgramID)
	if err != nil {
		return apply.Application{}, nil, err
	}
	resp, err := formspec.DecodeResponse(a.Answers)
	if err != nil {
		return apply.Application{}, nil, err
	}
	return a, formspec.Render(spec, resp), nil
}

func (s *ApplyService) Review(id uint, note string) (apply.Application, error) {
	a, err := s.Repos.Apply.GetApplicationByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apply.Application{}, ErrApplicationNotFound
	}
	if err != nil {
		return apply.Application{}, err
	}

	now := s.now()
	a.ReviewedAt = &now
	a.ReviewNote = note
	return a, s.Repos.Apply.MarkReviewed(&a)
}

func (s *ApplyService) formSpec(programID uint) (formspec.FormSpec, error) {
	rec, err := s.Repos.Form.GetFormByProgramID(programID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return emptyForm(programID), nil
	}
	if err != nil {
		return formspec.FormSpec{}, err
	}
	return rec.Spec()
}
