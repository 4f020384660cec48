package models

import "time"

// StudentStatus is the enrolment status code.
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "1"
	StudentStatusLeave     StudentStatus = "2"
	StudentStatusWithdrawn StudentStatus = "3"
	StudentStatusGraduated StudentStatus = "4"
)

// Valid reports whether s is a known status code.
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentStatusActive, StudentStatusLeave, StudentStatusWithdrawn, StudentStatusGraduated:
		return true
	default:
		return false
	}
}

// Label returns the human readable status.
func (s StudentStatus) Label() string {
	switch s {
	case StudentStatusActive:
		return "一般"
	case StudentStatusLeave:
		return "休學"
	case StudentStatusWithdrawn:
		return "退學"
	case StudentStatusGraduated:
		return "畢業"
	default:
		return "未知"
	}
}

// ChangeLogEntry records one enrolment change of a student.
type ChangeLogEntry struct {
	Date string `json:"date"` // yyyy-MM-dd
	Type string `json:"type"`
	Note string `json:"note"`
}

// Student is the administrative record of a pupil.
type Student struct {
	StudentID    string           `json:"studentId" db:"student_id"`
	Name         string           `json:"name" db:"name"`
	ClassName    string           `json:"className" db:"class_name"`
	CurrentClass *string          `json:"currentClass,omitempty" db:"current_class"`
	SeatNumber   string           `json:"seatNumber" db:"seat_number"`
	StatusCode   StudentStatus    `json:"statusCode" db:"status_code"`
	NationalID   *string          `json:"nationalId,omitempty" db:"national_id"`
	Email        *string          `json:"email,omitempty" db:"email"`
	ChangeLog    []ChangeLogEntry `json:"changeLog" db:"change_log"`
	CreatedAt    time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time        `json:"updatedAt" db:"updated_at"`
}

// EffectiveClass is the class the student currently belongs to.
func (s *Student) EffectiveClass() string {
	if s.CurrentClass != nil && *s.CurrentClass != "" {
		return *s.CurrentClass
	}
	return s.ClassName
}
