package form

import (
	"strconv"
	"time"

	"github.com/dasomcenter/dasom-api/internal/domain/formspec"
	"gorm.io/datatypes"
)

// Record is the persisted application form of one program. The field list is
// stored as a JSONB document in the exact wire shape the engine encodes, so
// the database row round-trips through formspec without loss.
type Record struct {
	FormID      uint           `json:"form_id" gorm:"column:form_id;primaryKey;autoIncrement"`
	ProgramID   uint           `json:"prg_id" gorm:"column:prg_id;uniqueIndex;not null"`
	Title       string         `json:"title" gorm:"column:title;not null"`
	Description string         `json:"description" gorm:"column:description"`
	Fields      datatypes.JSON `json:"fields" gorm:"column:fields;type:jsonb;not null"`
	CreatedAt   time.Time      `json:"create_at" gorm:"column:create_at;autoCreateTime"`
	UpdatedAt   time.Time      `json:"update_at" gorm:"column:update_at;autoUpdateTime"`
}

func (Record) TableName() string {
	return "program_forms"
}

// Spec rebuilds the engine form from the stored row. Decoding is strict; a
// row that fails here was written outside the engine and is treated as
// corrupt.
func (r Record) Spec() (formspec.FormSpec, error) {
	fields, err := formspec.DecodeFields(r.Fields)
	if err != nil {
		return formspec.FormSpec{}, err
	}
	return formspec.FormSpec{
		ID:          strconv.FormatUint(uint64(r.FormID), 10),
		ProgramID:   strconv.FormatUint(uint64(r.ProgramID), 10),
		Title:       r.Title,
		Description: r.Description,
		Fields:      fields,
	}, nil
}

// FromSpec materializes a row for the given program from an engine form that
// already passed Validate.
func FromSpec(programID uint, spec formspec.FormSpec) (Record, error) {
	data, err := formspec.EncodeFields(spec.Fields)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ProgramID:   programID,
		Title:       spec.Title,
		Description: spec.Description,
		Fields:      datatypes.JSON(data),
	}, nil
}
