package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/reporting"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/filestorage"
	"github.com/yigit/homeroom/internal/pkg/helpers"
	"github.com/yigit/homeroom/internal/pkg/websocket"
)

const announcementUploadDir = "announcements"

// EventPublisher pushes live events to connected dashboards
type EventPublisher interface {
	Publish(event websocket.Event)
}

// AnnouncementService manages dashboard announcements and their attachments
type AnnouncementService struct {
	announcementRepo announcementStore
	storage          filestorage.FileStorage
	events           EventPublisher
	logger           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(
	announcementRepo announcementStore,
	storage filestorage.FileStorage,
	events EventPublisher,
	logger zerolog.Logger,
) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		storage:          storage,
		events:           events,
		logger:           logger,
	}
}

// List returns a page of announcements, newest first
func (s *AnnouncementService) List(ctx context.Context, page, size int) (*dto.AnnouncementListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	list, total, err := s.announcementRepo.List(ctx, int(offset), limit)
	if err != nil {
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	out := make([]dto.AnnouncementResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.NewAnnouncementResponse(&list[i]))
	}
	return &dto.AnnouncementListResponse{
		Announcements: out,
		Pagination:    helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Get returns one announcement
func (s *AnnouncementService) Get(ctx context.Context, id int64) (*dto.AnnouncementResponse, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewAnnouncementResponse(a)
	return &resp, nil
}

func (s *AnnouncementService) saveAttachment(a *models.Announcement, file *multipart.FileHeader) error {
	stored, err := s.storage.SaveFileWithPath(file, announcementUploadDir)
	if err != nil {
		return fmt.Errorf("error saving attachment: %w", err)
	}
	a.FileURL = &stored.URL
	a.FileName = &stored.Name
	a.FilePath = &stored.Path
	return nil
}

func (s *AnnouncementService) removeFile(path *string) {
	if path == nil || *path == "" {
		return
	}
	if err := s.storage.DeleteFile(*path); err != nil {
		s.logger.Warn().Err(err).Str("path", *path).Msg("Could not remove announcement attachment")
	}
}

// Create publishes a new announcement with an optional attachment
func (s *AnnouncementService) Create(ctx context.Context, actor Actor, req *dto.AnnouncementRequest, file *multipart.FileHeader, today time.Time) (*dto.AnnouncementResponse, error) {
	day, err := helpers.ParseDateOr(req.Date, today)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date " + req.Date)
	}
	a := &models.Announcement{
		Title:       strings.TrimSpace(req.Title),
		Content:     req.Content,
		Date:        reporting.Day(day),
		AuthorName:  actor.Name,
		AuthorEmail: actor.Email,
		AuthorRole:  actor.Role,
	}
	if file != nil {
		if err := s.saveAttachment(a, file); err != nil {
			return nil, err
		}
	}

	if err := s.announcementRepo.Create(ctx, a); err != nil {
		s.removeFile(a.FilePath)
		return nil, err
	}

	resp := dto.NewAnnouncementResponse(a)
	s.events.Publish(websocket.Event{Type: websocket.EventAnnouncementCreated, Payload: resp})
	s.logger.Info().Int64("id", a.ID).Int64("by", actor.UserID).Msg("Announcement created")
	return &resp, nil
}

// Update edits an announcement. A new attachment replaces the old one;
// RemoveFile drops it.
func (s *AnnouncementService) Update(ctx context.Context, actor Actor, id int64, req *dto.AnnouncementRequest, file *multipart.FileHeader) (*dto.AnnouncementResponse, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldPath := a.FilePath

	a.Title = strings.TrimSpace(req.Title)
	a.Content = req.Content
	if req.Date != "" {
		day, err := reporting.ParseDate(req.Date)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid date " + req.Date)
		}
		a.Date = day
	}

	replaced := false
	switch {
	case file != nil:
		if err := s.saveAttachment(a, file); err != nil {
			return nil, err
		}
		replaced = true
	case req.RemoveFile:
		a.FileURL, a.FileName, a.FilePath = nil, nil, nil
		replaced = true
	}

	if err := s.announcementRepo.Update(ctx, a); err != nil {
		if file != nil {
			s.removeFile(a.FilePath)
		}
		return nil, err
	}
	if replaced {
		s.removeFile(oldPath)
	}

	resp := dto.NewAnnouncementResponse(a)
	s.events.Publish(websocket.Event{Type: websocket.EventAnnouncementUpdated, Payload: resp})
	s.logger.Info().Int64("id", id).Int64("by", actor.UserID).Msg("Announcement updated")
	return &resp, nil
}

// Delete removes an announcement and its attachment
func (s *AnnouncementService) Delete(ctx context.Context, actor Actor, id int64) error {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFile(a.FilePath)

	s.events.Publish(websocket.Event{Type: websocket.EventAnnouncementDeleted, Payload: map[string]int64{"id": id}})
	s.logger.Info().Int64("id", id).Int64("by", actor.UserID).Msg("Announcement deleted")
	return nil
}

// CountOn counts the announcements dated on a day
func (s *AnnouncementService) CountOn(ctx context.Context, date string) (*dto.CountResponse, error) {
	day, err := reporting.ParseDate(date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date " + date)
	}
	n, err := s.announcementRepo.CountCreatedOn(ctx, day)
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: n}, nil
}
