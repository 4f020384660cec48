package dto

import (
	"github.com/yigit/homeroom/internal/app/models"
)

// StudentFilterRequest narrows the student list
type StudentFilterRequest struct {
	Search    string `form:"search"`
	ClassName string `form:"className"`
	Status    string `form:"status" binding:"omitempty,oneof=1 2 3 4"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Size      int    `form:"size" binding:"omitempty,min=1,max=200"`
}

// StudentResponse is the API view of a student
type StudentResponse struct {
	StudentID      string                  `json:"studentId" example:"S1140001"`
	Name           string                  `json:"name" example:"王小明"`
	ClassName      string                  `json:"className" example:"一年甲班"`
	CurrentClass   *string                 `json:"currentClass,omitempty"`
	EffectiveClass string                  `json:"effectiveClass" example:"一年甲班"`
	SeatNumber     string                  `json:"seatNumber" example:"7"`
	StatusCode     models.StudentStatus    `json:"statusCode" example:"1"`
	StatusLabel    string                  `json:"statusLabel" example:"一般"`
	Email          *string                 `json:"email,omitempty"`
	ChangeLog      []models.ChangeLogEntry `json:"changeLog"`
}

// NewStudentResponse converts a student model
func NewStudentResponse(s *models.Student) StudentResponse {
	log := s.ChangeLog
	if log == nil {
		log = []models.ChangeLogEntry{}
	}
	return StudentResponse{
		StudentID:      s.StudentID,
		Name:           s.Name,
		ClassName:      s.ClassName,
		CurrentClass:   s.CurrentClass,
		EffectiveClass: s.EffectiveClass(),
		SeatNumber:     s.SeatNumber,
		StatusCode:     s.StatusCode,
		StatusLabel:    s.StatusCode.Label(),
		Email:          s.Email,
		ChangeLog:      log,
	}
}

// StudentListResponse is a page of students
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// StudentImportItem is one row of a student import
type StudentImportItem struct {
	StudentID    string  `json:"studentId" binding:"required,studentid"`
	Name         string  `json:"name" binding:"required,max=50"`
	ClassName    string  `json:"className" binding:"required,max=50"`
	CurrentClass *string `json:"currentClass" binding:"omitempty,max=50"`
	SeatNumber   string  `json:"seatNumber" binding:"max=10"`
	StatusCode   string  `json:"statusCode" binding:"omitempty,oneof=1 2 3 4"`
	NationalID   *string `json:"nationalId" binding:"omitempty,max=20"`
	Email        *string `json:"email" binding:"omitempty,email"`
}

// ImportStudentsRequest imports a roster. Overwrite replaces every student.
type ImportStudentsRequest struct {
	Mode     string              `json:"mode" binding:"required,oneof=add overwrite"`
	Students []StudentImportItem `json:"students" binding:"required,min=1,dive"`
}

// ImportResult reports how many rows an import touched
type ImportResult struct {
	Imported int `json:"imported" example:"30"`
	Skipped  int `json:"skipped" example:"0"`
}

// BatchUpdateStudentsRequest changes status and/or class of many students
type BatchUpdateStudentsRequest struct {
	StudentIDs []string `json:"studentIds" binding:"required,min=1,dive,required"`
	StatusCode *string  `json:"statusCode" binding:"omitempty,oneof=1 2 3 4"`
	NewClass   *string  `json:"newClass" binding:"omitempty,max=50"`
	Note       string   `json:"note" binding:"required,max=500"`
	Date       string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// DeleteStudentsRequest removes students permanently
type DeleteStudentsRequest struct {
	StudentIDs []string `json:"studentIds" binding:"required,min=1,dive,required"`
}

// AffectedResponse reports the number of affected rows
type AffectedResponse struct {
	Affected int64 `json:"affected" example:"3"`
}
