package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/websocket"
)

type announcementFixture struct {
	svc     *AnnouncementService
	repo    *fakeAnnouncements
	storage *fakeStorage
	events  *fakeEvents
}

func newAnnouncementFixture() announcementFixture {
	f := announcementFixture{repo: newFakeAnnouncements(), storage: &fakeStorage{}, events: &fakeEvents{}}
	f.svc = NewAnnouncementService(f.repo, f.storage, f.events, zerolog.Nop())
	return f
}

type failingAnnouncements struct{ *fakeAnnouncements }

func (failingAnnouncements) Create(context.Context, *models.Announcement) error {
	return errors.New("insert failed")
}

func TestCreateAnnouncementWithAttachment(t *testing.T) {
	f := newAnnouncementFixture()
	file := &multipart.FileHeader{Filename: "段考時程.pdf", Size: 2048}

	resp, err := f.svc.Create(context.Background(), adminActor, &dto.AnnouncementRequest{Title: " 段考公告 ", Content: "下週段考"}, file, day("2025-10-06"))
	require.NoError(t, err)
	assert.Equal(t, "段考公告", resp.Title)
	assert.Equal(t, "2025-10-06", resp.Date)
	require.NotNil(t, resp.FileURL)
	assert.Equal(t, "/uploads/announcements/段考時程.pdf", *resp.FileURL)
	assert.Equal(t, models.RoleAdmin, resp.AuthorRole)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, websocket.EventAnnouncementCreated, f.events.events[0].Type)
	assert.Empty(t, f.events.events[0].ClassName)

	stored := f.repo.items[resp.ID]
	require.NotNil(t, stored.FilePath)
	assert.Equal(t, "announcements/段考時程.pdf", *stored.FilePath)
}

func TestCreateAnnouncementRemovesFileWhenInsertFails(t *testing.T) {
	storage := &fakeStorage{}
	events := &fakeEvents{}
	svc := NewAnnouncementService(failingAnnouncements{newFakeAnnouncements()}, storage, events, zerolog.Nop())

	_, err := svc.Create(context.Background(), adminActor, &dto.AnnouncementRequest{Title: "t", Content: "c"}, &multipart.FileHeader{Filename: "x.png"}, day("2025-10-06"))
	require.Error(t, err)
	assert.Equal(t, []string{"announcements/x.png"}, storage.deleted)
	assert.Empty(t, events.events)
}

func TestUpdateAnnouncementAttachment(t *testing.T) {
	f := newAnnouncementFixture()
	created, err := f.svc.Create(context.Background(), adminActor, &dto.AnnouncementRequest{Title: "t", Content: "c"}, &multipart.FileHeader{Filename: "old.pdf"}, day("2025-10-06"))
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), adminActor, created.ID, &dto.AnnouncementRequest{Title: "t2", Content: "c2", Date: "2025-10-07"}, &multipart.FileHeader{Filename: "new.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, "2025-10-07", updated.Date)
	assert.Equal(t, "new.pdf", *updated.FileName)
	assert.Equal(t, []string{"announcements/old.pdf"}, f.storage.deleted)

	updated, err = f.svc.Update(context.Background(), adminActor, created.ID, &dto.AnnouncementRequest{Title: "t3", Content: "c3", RemoveFile: true}, nil)
	require.NoError(t, err)
	assert.Nil(t, updated.FileURL)
	assert.Equal(t, []string{"announcements/old.pdf", "announcements/new.pdf"}, f.storage.deleted)

	_, err = f.svc.Update(context.Background(), adminActor, created.ID, &dto.AnnouncementRequest{Title: "t", Content: "c", Date: "bad"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	types := make([]string, 0, len(f.events.events))
	for _, e := range f.events.events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{websocket.EventAnnouncementCreated, websocket.EventAnnouncementUpdated, websocket.EventAnnouncementUpdated}, types)
}

func TestDeleteAnnouncement(t *testing.T) {
	f := newAnnouncementFixture()
	created, err := f.svc.Create(context.Background(), adminActor, &dto.AnnouncementRequest{Title: "t", Content: "c"}, &multipart.FileHeader{Filename: "a.pdf"}, day("2025-10-06"))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), adminActor, created.ID))
	assert.Empty(t, f.repo.items)
	assert.Equal(t, []string{"announcements/a.pdf"}, f.storage.deleted)
	last := f.events.events[len(f.events.events)-1]
	assert.Equal(t, websocket.EventAnnouncementDeleted, last.Type)
	assert.Equal(t, map[string]int64{"id": created.ID}, last.Payload)

	assert.ErrorIs(t, f.svc.Delete(context.Background(), adminActor, created.ID), apperrors.ErrAnnouncementNotFound)
}

func TestListAndCountAnnouncements(t *testing.T) {
	f := newAnnouncementFixture()
	for _, d := range []string{"2025-10-06", "2025-10-06", "2025-10-07"} {
		_, err := f.svc.Create(context.Background(), adminActor, &dto.AnnouncementRequest{Title: "t", Content: "c", Date: d}, nil, day("2025-01-01"))
		require.NoError(t, err)
	}

	page, err := f.svc.List(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Announcements, 2)
	assert.Equal(t, int64(3), page.Pagination.TotalItems)
	assert.Equal(t, int64(3), page.Announcements[0].ID)

	count, err := f.svc.CountOn(context.Background(), "2025-10-06")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)

	_, err = f.svc.CountOn(context.Background(), "10/06")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
