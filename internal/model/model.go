// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the entity records served by the NCHRD REST API.
// The JSON tags match the wire format of the backend; every listable entity
// also implements Record so the generic table view can project it into rows
// without per-entity rendering code.
package model

import "strconv"

// Record is the projection contract consumed by the generic table view.
// Field returns the raw display value for a named field, or "" when the
// field is unknown or empty.
type Record interface {
	RecordID() int
	Field(name string) string
}

// Student statuses as stored by the backend.
const (
	StudentActive    = "active"
	StudentSuspended = "suspended"
	StudentGraduated = "graduated"
)

// Student is a trainee placed at a company.
type Student struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	NationalID    string `json:"national_id"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
	Company       int    `json:"company"`
	PersonalPhoto string `json:"personal_photo,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

func (s Student) RecordID() int { return s.ID }

func (s Student) Field(name string) string {
	switch name {
	case "name":
		return s.Name
	case "national_id":
		return s.NationalID
	case "phone":
		return s.Phone
	case "status":
		return s.Status
	case "company":
		return itoaNonZero(s.Company)
	}
	return ""
}

// Company is a training placement host.
type Company struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	SupervisorName string `json:"supervisor_name"`
	// StudentCount is computed server-side and ignored on writes.
	StudentCount int    `json:"student_count,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

func (c Company) RecordID() int { return c.ID }

func (c Company) Field(name string) string {
	switch name {
	case "name":
		return c.Name
	case "address":
		return c.Address
	case "phone":
		return c.Phone
	case "supervisor_name":
		return c.SupervisorName
	case "student_count":
		return strconv.Itoa(c.StudentCount)
	}
	return ""
}

// Evaluation results.
const (
	ResultCompetent    = "competent"
	ResultNotCompetent = "not_competent"
)

// Evaluation is a supervisor's final assessment of a student, scored on six
// 1-5 criteria with an overall competent/not-competent result. A student
// judged not competent must carry a repeat date.
type Evaluation struct {
	ID                 int    `json:"id"`
	Student            int    `json:"student"`
	Company            int    `json:"company"`
	Punctuality        int    `json:"punctuality"`
	Behavior           int    `json:"behavior"`
	PracticalSkills    int    `json:"practical_skills"`
	LearningLevel      int    `json:"learning_level"`
	PerformanceQuality int    `json:"performance_quality"`
	Teamwork           int    `json:"teamwork"`
	Notes              string `json:"notes"`
	Result             string `json:"result"`
	Date               string `json:"date,omitempty"`
	RepeatDate         string `json:"repeat_date,omitempty"`
	Status             string `json:"status,omitempty"`
}

func (e Evaluation) RecordID() int { return e.ID }

func (e Evaluation) Field(name string) string {
	switch name {
	case "id":
		return strconv.Itoa(e.ID)
	case "student":
		return itoaNonZero(e.Student)
	case "company":
		return itoaNonZero(e.Company)
	case "result":
		return e.Result
	case "date":
		return e.Date
	case "repeat_date":
		return e.RepeatDate
	case "notes":
		return e.Notes
	}
	return ""
}

// Training day types. The backend enforces one record per calendar date.
const (
	DayStudy           = "study"
	DayOfficialHoliday = "official_holiday"
	DayTraining        = "training"
	DayClosed          = "closed"
)

// TrainingDay marks what a calendar date means for trainees.
type TrainingDay struct {
	ID      int    `json:"id"`
	Date    string `json:"date"`
	DayType string `json:"day_type"`
}

func (d TrainingDay) RecordID() int { return d.ID }

func (d TrainingDay) Field(name string) string {
	switch name {
	case "date":
		return d.Date
	case "day_type":
		return d.DayType
	}
	return ""
}

// User roles known to the backend.
const (
	RoleAdmin       = "admin"
	RoleManager     = "manager"
	RoleSupervisor  = "supervisor"
	RoleEmployee    = "employee"
	RoleInstitution = "institution"
)

// User is a staff account. Password is write-only: it is sent on create and
// never returned by the API.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
	Password string `json:"password,omitempty"`
}

func (u User) RecordID() int { return u.ID }

func (u User) Field(name string) string {
	switch name {
	case "username":
		return u.Username
	case "email":
		return u.Email
	case "phone":
		return u.Phone
	case "role":
		return u.Role
	}
	return ""
}

// String returns the username, matching how log lines refer to users.
func (u User) String() string { return u.Username }

// Notification is a server-pushed message for the signed-in user.
type Notification struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

func (n Notification) RecordID() int { return n.ID }

func (n Notification) Field(name string) string {
	switch name {
	case "title":
		return n.Title
	case "message":
		return n.Message
	case "created_at":
		return n.CreatedAt
	case "is_read":
		if n.IsRead {
			return "read"
		}
		return "unread"
	}
	return ""
}

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceRecord is one student's presence on one date. The backend
// denormalizes student and company names into the record for display.
type AttendanceRecord struct {
	ID          int    `json:"id"`
	Student     int    `json:"student"`
	Company     int    `json:"company"`
	StudentName string `json:"student_name"`
	CompanyName string `json:"company_name"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
}

func (a AttendanceRecord) RecordID() int { return a.ID }

func (a AttendanceRecord) Field(name string) string {
	switch name {
	case "student_name":
		return a.StudentName
	case "company_name":
		return a.CompanyName
	case "date":
		return a.Date
	case "status":
		return a.Status
	case "reason":
		return a.Reason
	}
	return ""
}

// AttendanceReport is the aggregated answer of the attendance-report
// endpoint for a daily, weekly or monthly period.
type AttendanceReport struct {
	DateRange           string             `json:"date_range"`
	TotalStudents       int                `json:"total_students"`
	TotalRecords        int                `json:"total_records"`
	Present             int                `json:"present"`
	Absent              int                `json:"absent"`
	AbsentWithReason    int                `json:"absent_with_reason"`
	AbsentWithoutReason int                `json:"absent_without_reason"`
	AttendanceRate      float64            `json:"attendance_rate"`
	Records             []AttendanceRecord `json:"records"`
}

// TokenPair is the answer of the login endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// itoaNonZero renders foreign keys, treating zero as "unset".
func itoaNonZero(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
