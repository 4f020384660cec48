package dto

import (
	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/reporting"
)

// AttendanceFilterRequest selects the roll-call sheet of a class and day
type AttendanceFilterRequest struct {
	ClassName string `form:"className" binding:"required"`
	Date      string `form:"date" binding:"required,datetime=2006-01-02"`
}

// AttendanceRecordResponse is one period mark
type AttendanceRecordResponse struct {
	StudentID   string                  `json:"studentId" example:"S1140001"`
	StudentName string                  `json:"studentName" example:"王小明"`
	ClassName   string                  `json:"className" example:"一年甲班"`
	Date        string                  `json:"date" example:"2025-09-01"`
	Period      models.Period           `json:"period" example:"第一節"`
	Status      models.AttendanceStatus `json:"status" example:"Absent"`
}

// NewAttendanceRecordResponse converts a record model
func NewAttendanceRecordResponse(r *models.AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		StudentID:   r.StudentID,
		StudentName: r.StudentName,
		ClassName:   r.ClassName,
		Date:        reporting.DateKey(r.Date),
		Period:      r.Period,
		Status:      r.Status,
	}
}

// RollCallEntry is one cell of the roll-call grid
type RollCallEntry struct {
	StudentID string `json:"studentId" binding:"required"`
	Period    string `json:"period" binding:"required,period"`
	Status    string `json:"status" binding:"required,oneof=Present Late Sick Personal Official Menstrual Bereavement Absent"`
}

// RollCallRequest submits the marks of a class for one day
type RollCallRequest struct {
	ClassName string          `json:"className" binding:"required"`
	Date      string          `json:"date" binding:"required,datetime=2006-01-02"`
	Entries   []RollCallEntry `json:"entries" binding:"required,min=1,dive"`
}

// AttendanceImportItem is one imported mark
type AttendanceImportItem struct {
	StudentID string `json:"studentId" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Period    string `json:"period" binding:"required,period"`
	Status    string `json:"status" binding:"required,oneof=Present Late Sick Personal Official Menstrual Bereavement Absent"`
}

// ImportAttendanceRequest imports marks in bulk; existing marks are overwritten
type ImportAttendanceRequest struct {
	Records []AttendanceImportItem `json:"records" binding:"required,min=1,dive"`
}

// RollCallResponse reports the saved sheet
type RollCallResponse struct {
	Saved   int             `json:"saved" example:"150"`
	Periods []models.Period `json:"periods"`
}
