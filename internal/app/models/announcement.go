package models

import "time"

// Announcement is a bulletin shown on the dashboard.
type Announcement struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Date        time.Time `json:"date" db:"date"`
	FileURL     *string   `json:"fileUrl,omitempty" db:"file_url"`
	FileName    *string   `json:"fileName,omitempty" db:"file_name"`
	FilePath    *string   `json:"-" db:"file_path"`
	AuthorName  string    `json:"authorName" db:"author_name"`
	AuthorEmail string    `json:"authorEmail" db:"author_email"`
	AuthorRole  Role      `json:"authorRole" db:"author_role"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
