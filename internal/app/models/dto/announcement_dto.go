package dto

import (
	"time"

	"github.com/yigit/homeroom/internal/app/models"
)

// AnnouncementRequest is the multipart form of a new or edited announcement.
// The optional attachment is read from the "file" part.
type AnnouncementRequest struct {
	Title   string `form:"title" binding:"required,max=200"`
	Content string `form:"content" binding:"required,max=10000"`
	Date    string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	// RemoveFile drops the current attachment on update
	RemoveFile bool `form:"removeFile"`
}

// AnnouncementCountRequest counts announcements created on a day
type AnnouncementCountRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// AnnouncementResponse is the API view of an announcement
type AnnouncementResponse struct {
	ID         int64       `json:"id"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Date       string      `json:"date" example:"2025-09-01"`
	FileURL    *string     `json:"fileUrl,omitempty"`
	FileName   *string     `json:"fileName,omitempty"`
	AuthorName string      `json:"authorName"`
	AuthorRole models.Role `json:"authorRole"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// NewAnnouncementResponse converts an announcement model
func NewAnnouncementResponse(a *models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		Date:       a.Date.Format("2006-01-02"),
		FileURL:    a.FileURL,
		FileName:   a.FileName,
		AuthorName: a.AuthorName,
		AuthorRole: a.AuthorRole,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// AnnouncementListResponse is a page of announcements
type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	Pagination    PaginationInfo         `json:"pagination"`
}
