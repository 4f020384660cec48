package services

import (
	"context"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/yigit/homeroom/internal/app/auth"
	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/reporting"
	"github.com/yigit/homeroom/internal/app/repositories"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/filestorage"
	"github.com/yigit/homeroom/internal/pkg/websocket"
)

func day(s string) time.Time {
	d, err := reporting.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

var (
	adminActor = Actor{UserID: 1, Name: "教務處", Email: "admin@school.tw", Permission: models.Permission{Role: models.RoleAdmin}}
	teacherA   = Actor{UserID: 2, Name: "林老師", Email: "lin@school.tw", Permission: models.Permission{Role: models.RoleTeacher, AssignedClasses: []string{"一年甲班"}}}
	partTimeA  = Actor{UserID: 3, Name: "陳老師", Email: "chen@school.tw", Permission: models.Permission{Role: models.RolePartTime, AssignedClasses: []string{"一年甲班"}}}
)

type fakeUsers struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{users: map[int64]*models.User{}, nextID: 100}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) CreateUser(_ context.Context, u *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	cp := *u
	cp.ID = f.nextID
	f.users[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUsers) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) ListUsers(context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUsers) UpdateUser(_ context.Context, u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUsers) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	f.users[id].LastLoginAt = &at
	return nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUsers) CountAdmins(context.Context) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == models.RoleAdmin && u.IsActive {
			n++
		}
	}
	return n, nil
}

type fakeStudents struct {
	students []models.Student
}

func (f *fakeStudents) ListStudents(_ context.Context, filter repositories.StudentFilter) ([]models.Student, error) {
	var out []models.Student
	for _, s := range f.students {
		if filter.Classes != nil {
			found := false
			for _, c := range filter.Classes {
				if c == s.EffectiveClass() {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		if filter.Status != "" && s.StatusCode != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(s.Name, filter.Search) && !strings.Contains(s.StudentID, filter.Search) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudents) GetStudentByID(_ context.Context, id string) (*models.Student, error) {
	for i := range f.students {
		if f.students[i].StudentID == id {
			cp := f.students[i]
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudents) GetStudentsByIDs(_ context.Context, ids []string) ([]models.Student, error) {
	var out []models.Student
	for _, id := range ids {
		if s, err := f.GetStudentByID(context.Background(), id); err == nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStudents) ListClasses(context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for i := range f.students {
		c := f.students[i].EffectiveClass()
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeStudents) ImportStudents(_ context.Context, students []models.Student, replace bool) (int, error) {
	if replace {
		f.students = nil
	}
	for _, s := range students {
		replaced := false
		for i := range f.students {
			if f.students[i].StudentID == s.StudentID {
				f.students[i] = s
				replaced = true
			}
		}
		if !replaced {
			f.students = append(f.students, s)
		}
	}
	return len(students), nil
}

func (f *fakeStudents) ApplyChanges(_ context.Context, changes []repositories.StudentChange) (int64, error) {
	for _, c := range changes {
		if _, err := f.GetStudentByID(context.Background(), c.StudentID); err != nil {
			return 0, err
		}
	}
	for _, c := range changes {
		for i := range f.students {
			s := &f.students[i]
			if s.StudentID != c.StudentID {
				continue
			}
			if c.StatusCode != nil {
				s.StatusCode = *c.StatusCode
			}
			if c.CurrentClass != nil {
				cls := *c.CurrentClass
				s.CurrentClass = &cls
			}
			s.ChangeLog = append(s.ChangeLog, c.LogEntries...)
		}
	}
	return int64(len(changes)), nil
}

func (f *fakeStudents) DeleteStudents(_ context.Context, ids []string) (int64, error) {
	var kept []models.Student
	var n int64
	for _, s := range f.students {
		drop := false
		for _, id := range ids {
			if id == s.StudentID {
				drop = true
			}
		}
		if drop {
			n++
			continue
		}
		kept = append(kept, s)
	}
	f.students = kept
	return n, nil
}

type fakeAttendance struct {
	records []models.AttendanceRecord
	batches [][]models.AttendanceRecord
}

func (f *fakeAttendance) UpsertRecords(_ context.Context, records []models.AttendanceRecord) (int64, error) {
	f.batches = append(f.batches, records)
	for _, r := range records {
		replaced := false
		for i := range f.records {
			e := &f.records[i]
			if e.StudentID == r.StudentID && e.Date.Equal(r.Date) && e.Period == r.Period {
				*e = r
				replaced = true
			}
		}
		if !replaced {
			f.records = append(f.records, r)
		}
	}
	return int64(len(records)), nil
}

func (f *fakeAttendance) ListByClassAndDate(_ context.Context, className string, date time.Time) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, r := range f.records {
		if r.ClassName == className && r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendance) ListByStudent(_ context.Context, id string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, r := range f.records {
		if r.StudentID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendance) ListInRange(_ context.Context, filter repositories.AttendanceRangeFilter) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, r := range f.records {
		if r.Date.Before(filter.From) || r.Date.After(filter.To) {
			continue
		}
		if filter.StudentIDs != nil {
			found := false
			for _, id := range filter.StudentIDs {
				if id == r.StudentID {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeCounseling struct {
	records []models.CounselingRecord
	nextID  int64
}

func (f *fakeCounseling) Create(_ context.Context, c *models.CounselingRecord) error {
	f.nextID++
	c.ID = f.nextID
	f.records = append(f.records, *c)
	return nil
}

func (f *fakeCounseling) GetByID(_ context.Context, id int64) (*models.CounselingRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			cp := f.records[i]
			return &cp, nil
		}
	}
	return nil, apperrors.ErrCounselingRecordNotFound
}

func (f *fakeCounseling) ListByStudent(_ context.Context, id string) ([]models.CounselingRecord, error) {
	var out []models.CounselingRecord
	for _, r := range f.records {
		if r.StudentID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCounseling) ListAll(_ context.Context, year, semester string) ([]models.CounselingRecord, error) {
	var out []models.CounselingRecord
	for _, r := range f.records {
		if (year == "" || r.AcademicYear == year) && (semester == "" || r.Semester == semester) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCounseling) Delete(_ context.Context, id int64) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCounselingRecordNotFound
}

func (f *fakeCounseling) CountOnDay(_ context.Context, id string, date time.Time, prefix string) (int64, error) {
	var n int64
	for _, r := range f.records {
		if r.StudentID == id && r.Date.Equal(date) && strings.HasPrefix(r.CounselingType, prefix) {
			n++
		}
	}
	return n, nil
}

type fakeSemesters struct {
	list []models.SemesterSettings
}

func (f *fakeSemesters) Upsert(_ context.Context, s *models.SemesterSettings) error {
	for i := range f.list {
		if f.list[i].AcademicYear == s.AcademicYear && f.list[i].Semester == s.Semester {
			s.ID = f.list[i].ID
			f.list[i] = *s
			return nil
		}
	}
	s.ID = int64(len(f.list) + 1)
	f.list = append(f.list, *s)
	return nil
}

func (f *fakeSemesters) List(context.Context) ([]models.SemesterSettings, error) {
	return f.list, nil
}

func (f *fakeSemesters) GetCovering(_ context.Context, date time.Time) (*models.SemesterSettings, error) {
	var best *models.SemesterSettings
	for i := range f.list {
		s := &f.list[i]
		if s.StartDate.After(date) {
			continue
		}
		covers := !s.EndDate.Before(date)
		if best == nil {
			best = s
			continue
		}
		bestCovers := !best.EndDate.Before(date)
		if covers && !bestCovers || covers == bestCovers && s.StartDate.After(best.StartDate) {
			best = s
		}
	}
	if best == nil {
		return nil, apperrors.ErrSettingsNotFound
	}
	cp := *best
	return &cp, nil
}

func (f *fakeSemesters) GetLatest(context.Context) (*models.SemesterSettings, error) {
	if len(f.list) == 0 {
		return nil, apperrors.ErrSettingsNotFound
	}
	latest := f.list[0]
	for _, s := range f.list[1:] {
		if s.StartDate.After(latest.StartDate) {
			latest = s
		}
	}
	return &latest, nil
}

func (f *fakeSemesters) Delete(_ context.Context, id int64) error {
	for i := range f.list {
		if f.list[i].ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrSettingsNotFound
}

type fakeAnnouncements struct {
	items  map[int64]*models.Announcement
	nextID int64
}

func newFakeAnnouncements() *fakeAnnouncements {
	return &fakeAnnouncements{items: map[int64]*models.Announcement{}}
}

func (f *fakeAnnouncements) Create(_ context.Context, a *models.Announcement) error {
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeAnnouncements) Update(_ context.Context, a *models.Announcement) error {
	if _, ok := f.items[a.ID]; !ok {
		return apperrors.ErrAnnouncementNotFound
	}
	cp := *a
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeAnnouncements) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrAnnouncementNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeAnnouncements) GetByID(_ context.Context, id int64) (*models.Announcement, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrAnnouncementNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAnnouncements) List(_ context.Context, offset, limit int) ([]models.Announcement, int64, error) {
	var all []models.Announcement
	for _, a := range f.items {
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeAnnouncements) CountCreatedOn(_ context.Context, d time.Time) (int64, error) {
	var n int64
	for _, a := range f.items {
		if a.Date.Equal(d) {
			n++
		}
	}
	return n, nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveFileWithPath(fh *multipart.FileHeader, sub string) (*filestorage.StoredFile, error) {
	p := sub + "/" + fh.Filename
	f.saved = append(f.saved, p)
	return &filestorage.StoredFile{URL: "/uploads/" + p, Path: p, Name: fh.Filename, Size: fh.Size}, nil
}

func (f *fakeStorage) DeleteFile(p string) error {
	f.deleted = append(f.deleted, p)
	return nil
}

type fakeEvents struct {
	events []websocket.Event
}

func (f *fakeEvents) Publish(e websocket.Event) {
	f.events = append(f.events, e)
}

// classRoster builds n active students of a class with ids prefix1..prefixN
func classRoster(class, prefix string, n int) []models.Student {
	out := make([]models.Student, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Student{
			StudentID:  prefix + string(rune('0'+i/10)) + string(rune('0'+i%10)),
			Name:       "學生" + string(rune('0'+i/10)) + string(rune('0'+i%10)),
			ClassName:  class,
			SeatNumber: strings.TrimLeft(string(rune('0'+i/10))+string(rune('0'+i%10)), "0"),
			StatusCode: models.StudentStatusActive,
		})
	}
	return out
}

func newAuthz(students *fakeStudents) *auth.AuthorizationService {
	return auth.NewAuthorizationService(newFakeUsers(), students)
}
