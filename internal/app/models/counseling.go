package models

import "time"

// CounselingRecordType distinguishes talks from family contacts.
type CounselingRecordType string

const (
	RecordTypePersonalTalk  CounselingRecordType = "個人談話記錄"
	RecordTypeFamilyContact CounselingRecordType = "家庭聯繫紀錄"
)

// Valid reports whether t is a known record type.
func (t CounselingRecordType) Valid() bool {
	return t == RecordTypePersonalTalk || t == RecordTypeFamilyContact
}

// CounselingTypes maps counseling category codes to their labels.
var CounselingTypes = map[string]string{
	"A1": "保護性-性騷擾",
	"A2": "保護性-家人性侵",
	"A3": "保護性-非家人性侵(合意)",
	"A4": "保護性-非家人性侵(非合意)",
	"A5": "保護性-性交易",
	"A6": "保護性-家庭暴力",
	"B":  "中離-含長期缺曠課",
	"C1": "家庭問題-家庭變故",
	"C2": "家庭問題-家庭關係",
	"D1": "校園衝突-學生間衝突（含霸凌)",
	"D2": "校園衝突-師生間衝突",
	"D3": "校園衝突-親師間衝突",
	"E1": "心理衛生-性別與情感議題",
	"E2": "心理衛生-身心疾病(含疑似)",
	"E3": "心理衛生-自我傷害(含自殘與自殺)",
	"E4": "心理衛生-情緒困擾",
	"E5": "心理衛生-拒(懼)學",
	"E6": "心理衛生-物質濫用",
	"E7": "心理衛生-人際困擾",
	"F1": "偏差行為-少年犯罪",
	"F2": "偏差行為-偏差或違規行為",
	"G1": "生涯發展-適性輔導",
	"G2": "生涯發展-學習輔導",
	"H":  "其他",
}

// CounselingRecord is a counseling note about a student.
type CounselingRecord struct {
	ID               int64                `json:"id" db:"id"`
	StudentID        string               `json:"studentId" db:"student_id"`
	ClassName        string               `json:"className" db:"class_name"`
	RecordType       CounselingRecordType `json:"recordType" db:"record_type"`
	Date             time.Time            `json:"date" db:"date"`
	CounselingType   string               `json:"counselingType" db:"counseling_type"`
	Notes            string               `json:"notes" db:"notes"`
	AcademicYear     string               `json:"academicYear" db:"academic_year"`
	Semester         string               `json:"semester" db:"semester"`
	InquiryMethod    *string              `json:"inquiryMethod,omitempty" db:"inquiry_method"`
	ContactPerson    *string              `json:"contactPerson,omitempty" db:"contact_person"`
	VisibleToTeacher YesNo                `json:"visibleToTeacher" db:"visible_to_teacher"`
	AuthorName       string               `json:"authorName" db:"author_name"`
	AuthorEmail      string               `json:"authorEmail" db:"author_email"`
	AuthorRole       Role                 `json:"authorRole" db:"author_role"`
	CreatedAt        time.Time            `json:"createdAt" db:"created_at"`
}
