package dto

import (
	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/reporting"
)

// CreateCounselingRequest adds a counseling note
type CreateCounselingRequest struct {
	StudentID        string  `json:"studentId" binding:"required"`
	RecordType       string  `json:"recordType" binding:"required,oneof=個人談話記錄 家庭聯繫紀錄"`
	Date             string  `json:"date" binding:"required,datetime=2006-01-02"`
	CounselingType   string  `json:"counselingType" binding:"required,counselingtype"`
	Notes            string  `json:"notes" binding:"required,max=5000"`
	InquiryMethod    *string `json:"inquiryMethod" binding:"omitempty,max=50"`
	ContactPerson    *string `json:"contactPerson" binding:"omitempty,max=50"`
	VisibleToTeacher string  `json:"visibleToTeacher" binding:"omitempty,oneof=yes no"`
}

// CounselingCountRequest counts notes of a student on one day
type CounselingCountRequest struct {
	StudentID  string `form:"studentId" binding:"required"`
	Date       string `form:"date" binding:"required,datetime=2006-01-02"`
	TypePrefix string `form:"typePrefix"`
}

// CounselingRecordResponse is the API view of a counseling note
type CounselingRecordResponse struct {
	ID                  int64                       `json:"id" example:"12"`
	StudentID           string                      `json:"studentId"`
	ClassName           string                      `json:"className"`
	RecordType          models.CounselingRecordType `json:"recordType"`
	Date                string                      `json:"date" example:"2025-10-01"`
	CounselingType      string                      `json:"counselingType" example:"E4"`
	CounselingTypeLabel string                      `json:"counselingTypeLabel" example:"心理衛生-情緒困擾"`
	Notes               string                      `json:"notes"`
	AcademicYear        string                      `json:"academicYear" example:"114"`
	Semester            string                      `json:"semester" example:"1"`
	InquiryMethod       *string                     `json:"inquiryMethod,omitempty"`
	ContactPerson       *string                     `json:"contactPerson,omitempty"`
	VisibleToTeacher    models.YesNo                `json:"visibleToTeacher" example:"yes"`
	AuthorName          string                      `json:"authorName"`
	AuthorRole          models.Role                 `json:"authorRole"`
}

// NewCounselingRecordResponse converts a record model
func NewCounselingRecordResponse(r *models.CounselingRecord) CounselingRecordResponse {
	return CounselingRecordResponse{
		ID:                  r.ID,
		StudentID:           r.StudentID,
		ClassName:           r.ClassName,
		RecordType:          r.RecordType,
		Date:                reporting.DateKey(r.Date),
		CounselingType:      r.CounselingType,
		CounselingTypeLabel: models.CounselingTypes[r.CounselingType],
		Notes:               r.Notes,
		AcademicYear:        r.AcademicYear,
		Semester:            r.Semester,
		InquiryMethod:       r.InquiryMethod,
		ContactPerson:       r.ContactPerson,
		VisibleToTeacher:    r.VisibleToTeacher,
		AuthorName:          r.AuthorName,
		AuthorRole:          r.AuthorRole,
	}
}
