// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.
package api

import (
	"context"

	"github.com/nchrd/console/internal/model"
)

// MockClient implements Client for tests. Each method delegates to the
// matching overwrite when set, then to the base client, and panics
// otherwise so a test never silently exercises an unstubbed call.
type MockClient struct {
	BaseClient Client
	Overwrites MockClientOverwrites
}

type MockClientOverwrites struct {
	Login                func(ctx context.Context, username, password string) (model.TokenPair, error)
	ChangePassword       func(ctx context.Context, oldPassword, newPassword string) error
	ListStudents         func(ctx context.Context) ([]model.Student, error)
	CreateStudent        func(ctx context.Context, draft StudentDraft) (model.Student, error)
	UpdateStudent        func(ctx context.Context, id int, draft StudentDraft) (model.Student, error)
	DeleteStudent        func(ctx context.Context, id int) error
	ListCompanies        func(ctx context.Context) ([]model.Company, error)
	CreateCompany        func(ctx context.Context, draft CompanyDraft) (model.Company, error)
	UpdateCompany        func(ctx context.Context, id int, draft CompanyDraft) (model.Company, error)
	DeleteCompany        func(ctx context.Context, id int) error
	ListEvaluations      func(ctx context.Context) ([]model.Evaluation, error)
	CreateEvaluation     func(ctx context.Context, draft EvaluationDraft) (model.Evaluation, error)
	DeleteEvaluation     func(ctx context.Context, id int) error
	ListTrainingDays     func(ctx context.Context) ([]model.TrainingDay, error)
	CreateTrainingDay    func(ctx context.Context, draft TrainingDayDraft) (model.TrainingDay, error)
	UpdateTrainingDay    func(ctx context.Context, id int, draft TrainingDayDraft) (model.TrainingDay, error)
	DeleteTrainingDay    func(ctx context.Context, id int) error
	ListUsers            func(ctx context.Context) ([]model.User, error)
	CreateUser           func(ctx context.Context, draft UserDraft) (model.User, error)
	DeleteUser           func(ctx context.Context, id int) error
	ListNotifications    func(ctx context.Context) ([]model.Notification, error)
	MarkNotificationRead func(ctx context.Context, id int) error
	AttendanceReport     func(ctx context.Context, query ReportQuery) (model.AttendanceReport, error)
}

var _ Client = (*MockClient)(nil)

// client := NewMockClient(nil, MockClientOverwrites{ /* overwrite Client methods here... */ })
func NewMockClient(base Client, overwrites MockClientOverwrites) *MockClient {
	return &MockClient{BaseClient: base, Overwrites: overwrites}
}

// --- Client implementation ---

func (m *MockClient) Login(ctx context.Context, username, password string) (model.TokenPair, error) {
	if m.Overwrites.Login != nil {
		return m.Overwrites.Login(ctx, username, password)
	} else if m.BaseClient != nil {
		return m.BaseClient.Login(ctx, username, password)
	}
	panic("MockClient.Login not implemented")
}

func (m *MockClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if m.Overwrites.ChangePassword != nil {
		return m.Overwrites.ChangePassword(ctx, oldPassword, newPassword)
	} else if m.BaseClient != nil {
		return m.BaseClient.ChangePassword(ctx, oldPassword, newPassword)
	}
	panic("MockClient.ChangePassword not implemented")
}

func (m *MockClient) ListStudents(ctx context.Context) ([]model.Student, error) {
	if m.Overwrites.ListStudents != nil {
		return m.Overwrites.ListStudents(ctx)
	} else if m.BaseClient != nil {
		return m.BaseClient.ListStudents(ctx)
	}
	panic("MockClient.ListStudents not implemented")
}

func (m *MockClient) CreateStudent(ctx context.Context, draft StudentDraft) (model.Student, error) {
	if m.Overwrites.CreateStudent != nil {
		return m.Overwrites.CreateStudent(ctx, draft)
	} else if m.BaseClient != nil {
		return m.BaseClient.CreateStudent(ctx, draft)
	}
	panic("MockClient.CreateStudent not implemented")
}

func (m *MockClient) UpdateStudent(ctx context.Context, id int, draft StudentDraft) (model.Student, error) {
	if m.Overwrites.UpdateStudent != nil {
		return m.Overwrites.UpdateStudent(ctx, id, draft)
	} else if m.BaseClient != nil {
		return m.BaseClient.UpdateStudent(ctx, id, draft)
	}
	panic("MockClient.UpdateStudent not implemented")
}

func (m *MockClient) DeleteStudent(ctx context.Context, id int) error {
	if m.Overwrites.DeleteStudent != nil {
		return m.Overwrites.DeleteStudent(ctx, id)
	} else if m.BaseClient != nil {
		return m.BaseClient.DeleteStudent(ctx, id)
	}
	panic("MockClient.DeleteStudent not implemented")
}

func (m *MockClient) ListCompanies(ctx context.Context) ([]model.Company, error) {
	if m.Overwrites.ListCompanies != nil {
		return m.Overwrites.ListCompanies(ctx)
	} else if m.BaseClient != nil {
		return m.BaseClient.ListCompanies(ctx)
	}
	panic("MockClient.ListCompanies not implemented")
}

func (m *MockClient) CreateCompany(ctx context.Context, draft CompanyDraft) (model.Company, error) {
	if m.Overwrites.CreateCompany != nil {
		return m.Overwrites.CreateCompany(ctx, draft)
	} else if m.BaseClient != nil {
		return m.BaseClient.CreateCompany(ctx, draft)
	}
	panic("MockClient.CreateCompany not implemented")
}

func (m *MockClient) UpdateCompany(ctx context.Context, id int, draft CompanyDraft) (model.Company, error) {
	if m.Overwrites.UpdateCompany != nil {
		return m.Overwrites.UpdateCompany(ctx, id, draft)
	} else if m.BaseClient != nil {
		return m.BaseClient.UpdateCompany(ctx, id, draft)
	}
	panic("MockClient.UpdateCompany not implemented")
}

func (m *MockClient) DeleteCompany(ctx context.Context, id int) error {
	if m.Overwrites.DeleteCompany != nil {
		return m.Overwrites.DeleteCompany(ctx, id)
	} else if m.BaseClient != nil {
		return m.BaseClient.DeleteCompany(ctx, id)
	}
	panic("MockClient.DeleteCompany not implemented")
}

func (m *MockClient) ListEvaluations(ctx context.Context) ([]model.Evaluation, error) {
	if m.Overwrites.ListEvaluations != nil {
		return m.Overwrites.ListEvaluations(ctx)
	} else if m.BaseClient != nil {
		return m.BaseClient.ListEvaluations(ctx)
	}
	panic("MockClient.ListEvaluations not implemented")
}

func (m *MockClient) CreateEvaluation(ctx context.Context, draft EvaluationDraft) (model.Evaluation, error) {
	if m.Overwrites.CreateEvaluation != nil {
		return m.Overwrites.CreateEvaluation(ctx, draft)
	} else if m.BaseClient != nil {
		return m.BaseClient.CreateEvaluation(ctx, draft)
	}
	panic("MockClient.CreateEvaluation not implemented")
}

func (m *MockClient) DeleteEvaluation(ctx context.Context, id int) error {
	if m.Overwrites.DeleteEvaluation != nil {
		return m.Overwrites.DeleteEvaluation(ctx, id)
	} else if m.BaseClient != nil {
		return m.BaseClient.DeleteEvaluation(ctx, id)
	}
	panic("MockClient.DeleteEvaluation not implemented")
}

func (m *MockClient) ListTrainingDays(ctx context.Context) ([]model.TrainingDay, error) {
	if m.Overwrites.ListTrainingDays != nil {
		return m.Overwrites.ListTrainingDays(ctx)
	} else if m.BaseClient != nil {
		return m.BaseClient.ListTrainingDays(ctx)
	}
	panic("MockClient.ListTrainingDays not implemented")
}

func (m *MockClient) CreateTrainingDay(ctx context.Context, draft TrainingDayDraft) (model.TrainingDay, error) {
	if m.Overwrites.CreateTrainingDay != nil {
		return m.Overwrites.CreateTrainingDay(ctx, draft)
	} else if m.BaseClient != nil {
		return m.BaseClient.CreateTrainingDay(ctx, draft)
	}
	panic("MockClient.CreateTrainingDay not implemented")
}

func (m *MockClient) UpdateTrainingDay(ctx context.Context, id int, draft TrainingDayDraft) (model.TrainingDay, error) {
	if m.Overwrites.UpdateTrainingDay != nil {
		return m.Overwrites.UpdateTrainingDay(ctx, id, draft)
	} else if m.BaseClient != nil {
		return m.BaseClient.UpdateTrainingDay(ctx, id, draft)
	}
	panic("MockClient.UpdateTrainingDay not implemented")
}

func (m *MockClient) DeleteTrainingDay(ctx context.Context, id int) error {
	if m.Overwrites.DeleteTrainingDay != nil {
		return m.Overwrites.DeleteTrainingDay(ctx, id)
	} else if m.BaseClient != nil {
		return m.BaseClient.DeleteTrainingDay(ctx, id)
	}
	panic("MockClient.DeleteTrainingDay not implemented")
}

func (m *MockClient) ListUsers(ctx context.Context) ([]model.User, error) {
	if m.Overwrites.ListUsers != nil {
		return m.Overwrites.ListUsers(ctx)
	} else if m.BaseClient != nil {
		return m.BaseClient.ListUsers(ctx)
	}
	panic("MockClient.ListUsers not implemented")
}

func (m *MockClient) CreateUser(ctx context.Context, draft UserDraft) (model.User, error) {
	if m.Overwrites.CreateUser != nil {
		return m.Overwrites.CreateUser(ctx, draft)
	} else if m.BaseClient != nil {
		return m.BaseClient.CreateUser(ctx, draft)
	}
	panic("MockClient.CreateUser not implemented")
}

func (m *MockClient) DeleteUser(ctx context.Context, id int) error {
	if m.Overwrites.DeleteUser != nil {
		return m.Overwrites.DeleteUser(ctx, id)
	} else if m.BaseClient != nil {
		return m.BaseClient.DeleteUser(ctx, id)
	}
	panic("MockClient.DeleteUser not implemented")
}

func (m *MockClient) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	if m.Overwrites.ListNotifications != nil {
		return m.Overwrites.ListNotifications(ctx)
	} else if m.BaseClient != nil {
		return m.BaseClient.ListNotifications(ctx)
	}
	panic("MockClient.ListNotifications not implemented")
}

func (m *MockClient) MarkNotificationRead(ctx context.Context, id int) error {
	if m.Overwrites.MarkNotificationRead != nil {
		return m.Overwrites.MarkNotificationRead(ctx, id)
	} else if m.BaseClient != nil {
		return m.BaseClient.MarkNotificationRead(ctx, id)
	}
	panic("MockClient.MarkNotificationRead not implemented")
}

func (m *MockClient) AttendanceReport(ctx context.Context, query ReportQuery) (model.AttendanceReport, error) {
	if m.Overwrites.AttendanceReport != nil {
		return m.Overwrites.AttendanceReport(ctx, query)
	} else if m.BaseClient != nil {
		return m.BaseClient.AttendanceReport(ctx, query)
	}
	panic("MockClient.AttendanceReport not implemented")
}
