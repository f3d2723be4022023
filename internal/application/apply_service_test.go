package application

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dasomcenter/dasom-api/internal/domain/apply"
	"github.com/dasomcenter/dasom-api/internal/domain/form"
	"github.com/dasomcenter/dasom-api/internal/domain/formspec"
	"github.com/dasomcenter/dasom-api/internal/domain/program"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"github.com/dasomcenter/dasom-api/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApplyServiceMocks(t *testing.T) (*ApplyService, *mock.MockProgramRepo, *mock.MockFormRepo, *mock.MockApplyRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProgram := mock.NewMockProgramRepo(ctrl)
	mockForm := mock.NewMockFormRepo(ctrl)
	mockApply := mock.NewMockApplyRepo(ctrl)
	repos := &repository.Repos{
		Program: mockProgram,
		Form:    mockForm,
		Apply:   mockApply,
	}
	svc := NewApplyService(repos)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	return svc, mockProgram, mockForm, mockApply
}

func consentedSubmission(answers map[string]json.RawMessage) apply.SubmitApplicationDTO {
	return apply.SubmitApplicationDTO{
		Name:            "Kim Dasom",
		Email:           "dasom@example.com",
		PortraitConsent: true,
		PrivacyConsent:  true,
		Answers:         answers,
	}
}

func TestApplyService_Submit_ConsentCheckedFirst(t *testing.T) {
	svc, _, _, _ := setupApplyServiceMocks(t)

	// Missing consent short-circuits before any repository access, so the
	// broken answers below are never seen.
	input := apply.SubmitApplicationDTO{
		Name:           "Kim Dasom",
		Email:          "dasom@example.com",
		PrivacyConsent: true,
		Answers:        map[string]json.RawMessage{"bogus": json.RawMessage(`"x"`)},
	}
	_, err := svc.Submit(1, input)
	assert.ErrorIs(t, err, apply.ErrConsentRequired)
}

func TestApplyService_Submit_ClosedProgram(t *testing.T) {
	svc, mockProgram, _, _ := setupApplyServiceMocks(t)

	mockProgram.EXPECT().GetProgramByID(uint(1)).Return(program.Program{PrgID: 1, Status: program.StatusClosed}, nil)

	_, err := svc.Submit(1, consentedSubmission(nil))
	assert.ErrorIs(t, err, apply.ErrNotAccepting)
}

func TestApplyService_Submit_WindowEnforced(t *testing.T) {
	svc, mockProgram, _, _ := setupApplyServiceMocks(t)

	ended := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mockProgram.EXPECT().GetProgramByID(uint(1)).Return(program.Program{
		PrgID:      1,
		Status:     program.StatusOpen,
		ApplyEndAt: &ended,
	}, nil)

	_, err := svc.Submit(1, consentedSubmission(nil))
	assert.ErrorIs(t, err, apply.ErrNotAccepting)
}

func TestApplyService_Submit_FullProgram(t *testing.T) {
	svc, mockProgram, _, mockApply := setupApplyServiceMocks(t)

	mockProgram.EXPECT().GetProgramByID(uint(1)).Return(program.Program{
		PrgID:    1,
		Status:   program.StatusOpen,
		Capacity: 2,
	}, nil)
	mockApply.EXPECT().CountByProgram(uint(1)).Return(int64(2), nil)

	_, err := svc.Submit(1, consentedSubmission(nil))
	assert.ErrorIs(t, err, apply.ErrProgramFull)
}

func TestApplyService_Submit_LastSeatAccepted(t *testing.T) {
	svc, mockProgram, mockForm, mockApply := setupApplyServiceMocks(t)

	mockProgram.EXPECT().GetProgramByID(uint(1)).Return(program.Program{
		PrgID:    1,
		Status:   program.StatusOpen,
		Capacity: 2,
	}, nil)
	mockApply.EXPECT().CountByProgram(uint(1)).Return(int64(1), nil)
	mockForm.EXPECT().GetFormByProgramID(uint(1)).Return(form.Record{}, gorm.ErrRecordNotFound)
	mockApply.EXPECT().CreateApplication(gomock.Any()).Return(nil)

	_, err := svc.Submit(1, consentedSubmission(nil))
	assert.NoError(t, err)
}

func TestApplyService_Submit_Success(t *testing.T) {
	svc, mockProgram, mockForm, mockApply := setupApplyServiceMocks(t)

	fields := []formspec.FieldSpec{
		{ID: "f1", Label: "Motivation", Type: formspec.FieldLongText, Required: true, Order: 0},
	}
	rec := storedFormRecord(t, 1, "Application", fields)

	mockProgram.EXPECT().GetProgramByID(uint(1)).Return(program.Program{PrgID: 1, Status: program.StatusOpen}, nil)
	mockForm.EXPECT().GetFormByProgramID(uint(1)).Return(rec, nil)

	var created *apply.Application
	mockApply.EXPECT().CreateApplication(gomock.Any()).DoAndReturn(func(a *apply.Application) error {
		a.AppID = 42
		created = a
		return nil
	})

	a, err := svc.Submit(1, consentedSubmission(map[string]json.RawMessage{
		"f1": json.RawMessage(`"I want to help."`),
	}))
	require.NoError(t, err)
	assert.Equal(t, uint(42), a.AppID)

	require.NotNil(t, created)
	resp, err := formspec.DecodeResponse(created.Answers)
	require.NoError(t, err)
	assert.Equal(t, "I want to help.", resp["f1"])
}

func TestApplyService_Submit_AnswerValidationFails(t *testing.T) {
	svc, mockProgram, mockForm, _ := setupApplyServiceMocks(t)

	fields := []formspec.FieldSpec{
		{ID: "f1", Label: "Motivation", Type: formspec.FieldLongText, Required: true, Order: 0},
	}
	rec := storedFormRecord(t, 1, "Application", fields)

	mockProgram.EXPECT().GetProgramByID(uint(1)).Return(program.Program{PrgID: 1, Status: program.StatusOpen}, nil)
	mockForm.EXPECT().GetFormByProgramID(uint(1)).Return(rec, nil)

	_, err := svc.Submit(1, consentedSubmission(nil))
	var verr *formspec.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, formspec.RuleRequired, verr.Fields[0].Rule)
}

func TestApplyService_Submit_NoFormAcceptsEmptyAnswers(t *testing.T) {
	svc, mockProgram, mockForm, mockApply := setupApplyServiceMocks(t)

	mockProgram.EXPECT().GetProgramByID(uint(1)).Return(program.Program{PrgID: 1, Status: program.StatusOpen}, nil)
	mockForm.EXPECT().GetFormByProgramID(uint(1)).Return(form.Record{}, gorm.ErrRecordNotFound)
	mockApply.EXPECT().CreateApplication(gomock.Any()).Return(nil)

	_, err := svc.Submit(1, consentedSubmission(nil))
	assert.NoError(t, err)
}

func TestApplyService_Get_RendersAgainstCurrentForm(t *testing.T) {
	svc, _, mockForm, mockApply := setupApplyServiceMocks(t)

	fields := []formspec.FieldSpec{
		{ID: "f1", Label: "Motivation", Type: formspec.FieldLongText, Order: 0},
	}
	rec := storedFormRecord(t, 1, "Application", fields)

	resp := formspec.Response{"f1": "Hello", "f-deleted": "old answer"}
	answers, err := resp.Encode()
	require.NoError(t, err)

	mockApply.EXPECT().GetApplicationByID(uint(42)).Return(apply.Application{
		AppID:     42,
		ProgramID: 1,
		Answers:   answers,
	}, nil)
	mockForm.EXPECT().GetFormByProgramID(uint(1)).Return(rec, nil)

	a, items, err := svc.Get(42)
	require.NoError(t, err)
	assert.Equal(t, uint(42), a.AppID)

	// One item per form field plus the orphaned answer.
	require.Len(t, items, 2)
	assert.Equal(t, "f1", items[0].FieldID)
	assert.False(t, items[0].Orphaned)
	assert.Equal(t, "f-deleted", items[1].FieldID)
	assert.True(t, items[1].Orphaned)
}

func TestApplyService_Review_SetsTimestamp(t *testing.T) {
	svc, _, _, mockApply := setupApplyServiceMocks(t)

	mockApply.EXPECT().GetApplicationByID(uint(5)).Return(apply.Application{AppID: 5}, nil)
	mockApply.EXPECT().MarkReviewed(gomock.Any()).Return(nil)

	a, err := svc.Review(5, "looks good")
	require.NoError(t, err)
	require.NotNil(t, a.ReviewedAt)
	assert.Equal(t, svc.now(), *a.ReviewedAt)
	assert.Equal(t, "looks good", a.ReviewNote)
}

func TestApplyService_Review_NotFound(t *testing.T) {
	svc, _, _, mockApply := setupApplyServiceMocks(t)

	mockApply.EXPECT().GetApplicationByID(uint(5)).Return(apply.Application{}, gorm.ErrRecordNotFound)

	_, err := svc.Review(5, "")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
