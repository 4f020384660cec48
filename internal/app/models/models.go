package models

import "slices"

// Role is the closed set of user roles known to the system.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleTeacher  Role = "teacher"
	RolePartTime Role = "part-time"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RolePartTime:
		return true
	default:
		return false
	}
}

// Label returns the display label used on exports and author lines.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "管理員"
	case RoleTeacher:
		return "導師"
	case RolePartTime:
		return "兼課老師"
	default:
		return "未知"
	}
}

// Permission is the reader identity handed to the visibility gate.
// AssignedClasses holds the homeroom classes of a teacher or the taught
// classes of a part-time teacher; it is ignored for admins.
type Permission struct {
	Role            Role     `json:"role"`
	AssignedClasses []string `json:"assignedClasses"`
}

// HasClass reports whether className is among the assigned classes.
func (p Permission) HasClass(className string) bool {
	if className == "" {
		return false
	}
	return slices.Contains(p.AssignedClasses, className)
}

// YesNo is the textual flag stored on counseling records.
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)
