package application

import (
	"errors"
	"time"

	"github.com/dasomcenter/dasom-api/internal/domain/program"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrInvalidWindow   = errors.New("application window start must precede end")
)

type ProgramService struct {
	Repos *repository.Repos
}

func NewProgramService(repos *repository.Repos) *ProgramService {
	return &ProgramService{Repos: repos}
}

func (s *ProgramService) List(includeDraft bool) ([]program.Program, error) {
	return s.Repos.Program.ListPrograms(includeDraft)
}

func (s *ProgramService) Get(id uint, includeDraft bool) (program.Program, error) {
	p, err := s.Repos.Program.GetProgramByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return program.Program{}, ErrProgramNotFound
	}
	if err != nil {
		return program.Program{}, err
	}
	if p.Status == program.StatusDraft && !includeDraft {
		return program.Program{}, ErrProgramNotFound
	}
	return p, nil
}

func (s *ProgramService) Create(input program.CreateProgramDTO) (program.Program, error) {
	if err := checkWindow(input.ApplyStartAt, input.ApplyEndAt); err != nil {
		return program.Program{}, err
	}
	p := program.Program{
		Title:        input.Title,
		Summary:      input.Summary,
		Content:      input.Content,
		Location:     input.Location,
		Capacity:     input.Capacity,
		Status:       program.StatusDraft,
		Tags:         pq.StringArray(input.Tags),
		ApplyStartAt: input.ApplyStartAt,
		ApplyEndAt:   input.ApplyEndAt,
	}
	return p, s.Repos.Program.SaveProgram(&p)
}

func (s *ProgramService) Update(id uint, input program.UpdateProgramDTO) (program.Program, error) {
	p, err := s.Repos.Program.GetProgramByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return program.Program{}, ErrProgramNotFound
	}
	if err != nil {
		return program.Program{}, err
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Summary != nil {
		p.Summary = *input.Summary
	}
	if input.Content != nil {
		p.Content = *input.Content
	}
	if input.Location != nil {
		p.Location = *input.Location
	}
	if input.Capacity != nil {
		p.Capacity = *input.Capacity
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.Tags != nil {
		p.Tags = pq.StringArray(input.Tags)
	}
	if input.ApplyStartAt != nil {
		p.ApplyStartAt = input.ApplyStartAt
	}
	if input.ApplyEndAt != nil {
		p.ApplyEndAt = input.ApplyEndAt
	}
	if err := checkWindow(p.ApplyStartAt, p.ApplyEndAt); err != nil {
		return program.Program{}, err
	}
	return p, s.Repos.Program.SaveProgram(&p)
}

// Delete removes a program with its form and applications in one
// transaction.
func (s *ProgramService) Delete(id uint) error {
	if _, err := s.Repos.Program.GetProgramByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.DeleteFormByProgramID(id); err != nil {
			return err
		}
		return tx.Program.DeleteProgram(id)
	})
}

func checkWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrInvalidWindow
	}
	return nil
}
