// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

// package api is the console's single point of contact with the NCHRD REST
// backend. Every screen and CLI command goes through the Client interface;
// the HTTP implementation injects the bearer credential, tags requests, and
// reacts to authentication failure globally.
package api

import (
	"context"

	"github.com/nchrd/console/internal/model"
)

type Client interface {
	// --- Session ---

	// Login exchanges credentials for a token pair. It does not store the
	// tokens; that is the caller's decision.
	Login(ctx context.Context, username, password string) (model.TokenPair, error)

	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// --- Students ---

	ListStudents(ctx context.Context) ([]model.Student, error)

	CreateStudent(ctx context.Context, draft StudentDraft) (model.Student, error)

	UpdateStudent(ctx context.Context, id int, draft StudentDraft) (model.Student, error)

	DeleteStudent(ctx context.Context, id int) error

	// --- Companies ---

	ListCompanies(ctx context.Context) ([]model.Company, error)

	CreateCompany(ctx context.Context, draft CompanyDraft) (model.Company, error)

	UpdateCompany(ctx context.Context, id int, draft CompanyDraft) (model.Company, error)

	DeleteCompany(ctx context.Context, id int) error

	// --- Evaluations ---

	ListEvaluations(ctx context.Context) ([]model.Evaluation, error)

	CreateEvaluation(ctx context.Context, draft EvaluationDraft) (model.Evaluation, error)

	DeleteEvaluation(ctx context.Context, id int) error

	// --- Training days ---

	ListTrainingDays(ctx context.Context) ([]model.TrainingDay, error)

	CreateTrainingDay(ctx context.Context, draft TrainingDayDraft) (model.TrainingDay, error)

	UpdateTrainingDay(ctx context.Context, id int, draft TrainingDayDraft) (model.TrainingDay, error)

	DeleteTrainingDay(ctx context.Context, id int) error

	// --- Users ---

	ListUsers(ctx context.Context) ([]model.User, error)

	CreateUser(ctx context.Context, draft UserDraft) (model.User, error)

	DeleteUser(ctx context.Context, id int) error

	// --- Notifications ---

	ListNotifications(ctx context.Context) ([]model.Notification, error)

	MarkNotificationRead(ctx context.Context, id int) error

	// --- Attendance reports ---

	AttendanceReport(ctx context.Context, query ReportQuery) (model.AttendanceReport, error)
}

// StudentDraft is the staging record for a student create or edit. PhotoPath
// points at a local image file; when set, the request goes out as multipart
// with the photo attached.
type StudentDraft struct {
	Name       string
	NationalID string
	Phone      string
	Status     string
	Company    int
	PhotoPath  string
}

// CompanyDraft is the staging record for a company create or edit.
type CompanyDraft struct {
	Name           string
	Address        string
	Phone          string
	SupervisorName string
}

// EvaluationDraft is the staging record for a new evaluation. The six
// criteria are scored 1-5; RepeatDate is required when Result is
// not_competent.
type EvaluationDraft struct {
	Student            int
	Company            int
	Punctuality        int
	Behavior           int
	PracticalSkills    int
	LearningLevel      int
	PerformanceQuality int
	Teamwork           int
	Notes              string
	Result             string
	RepeatDate         string
}

// TrainingDayDraft is the staging record for a training day create or edit.
type TrainingDayDraft struct {
	Date    string
	DayType string
}

// UserDraft is the staging record for a new staff account.
type UserDraft struct {
	Username string
	Email    string
	Password string
	Phone    string
	Role     string
}

// Report types accepted by the attendance-report endpoint.
const (
	ReportDaily   = "daily"
	ReportWeekly  = "weekly"
	ReportMonthly = "monthly"
)

// ReportQuery selects an attendance report period. Exactly one of Date,
// Week or Month is consulted, matching Type.
type ReportQuery struct {
	Type  string
	Date  string // daily: 2024-01-15
	Week  string // weekly: 2024-W03
	Month string // monthly: 2024-03
}
