// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nchrd/console/internal/logging"
	"github.com/nchrd/console/internal/model"
	"github.com/nchrd/console/internal/session"
)

// loginPath is exempt from the global 401 handling: a failed login is a bad
// credential, not an expired session.
const loginPath = "auth/token/"

// HTTP talks to the NCHRD backend over JSON/HTTP with bearer
// authentication. It is safe for concurrent use.
type HTTP struct {
	base    *url.URL
	hc      *http.Client
	session *session.Store
}

var _ Client = (*HTTP)(nil)

// NewHTTP builds a client rooted at baseURL (e.g.
// http://127.0.0.1:8000/api/). The session store supplies the bearer
// credential and is cleared by the client on any 401 answer.
func NewHTTP(baseURL string, sess *session.Store) (*HTTP, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse API base URL: %w", err)
	}
	return &HTTP{
		base:    base,
		hc:      &http.Client{Timeout: 30 * time.Second},
		session: sess,
	}, nil
}

// do is the single request core behind every verb. It attaches the bearer
// header when a credential is present, tags the request, decodes the JSON
// answer into out, and applies the global 401 behavior.
func (c *HTTP) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	u := c.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if access, _ := c.session.Tokens(); access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && path != loginPath {
		// The credential is dead. Clear it here so every caller sees a
		// signed-out session, then report the failure; callers must not
		// assume recovery.
		if err := c.session.Clear(); err != nil {
			logging.Errorf("clearing session after 401: %v", err)
		}
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}
	if resp.StatusCode >= 400 {
		apiErr := decodeError(resp.StatusCode, raw)
		logging.Debugf("%s %s -> %d: %v", method, path, resp.StatusCode, apiErr)
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

func (c *HTTP) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

func (c *HTTP) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, "application/json", bytes.NewReader(body), out)
}

func (c *HTTP) put(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPut, path, nil, "application/json", bytes.NewReader(body), out)
}

func (c *HTTP) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, nil)
}

// sendForm posts or puts a multipart form, attaching the file at photoPath
// under the personal_photo field when set.
func (c *HTTP) sendForm(ctx context.Context, method, path string, fields map[string]string, photoPath string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("encode form field %s: %w", name, err)
		}
	}
	if photoPath != "" {
		f, err := os.Open(photoPath)
		if err != nil {
			return fmt.Errorf("open photo: %w", err)
		}
		defer f.Close()
		part, err := w.CreateFormFile("personal_photo", filepath.Base(photoPath))
		if err != nil {
			return fmt.Errorf("encode photo: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return fmt.Errorf("encode photo: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish form: %w", err)
	}
	return c.do(ctx, method, path, nil, w.FormDataContentType(), &buf, out)
}

// --- Session ---

func (c *HTTP) Login(ctx context.Context, username, password string) (model.TokenPair, error) {
	var tokens model.TokenPair
	payload := map[string]string{"username": username, "password": password}
	if err := c.post(ctx, loginPath, payload, &tokens); err != nil {
		return model.TokenPair{}, err
	}
	return tokens, nil
}

func (c *HTTP) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	payload := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	return c.post(ctx, "change-password/", payload, nil)
}

// --- Students ---

func (c *HTTP) ListStudents(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	if err := c.get(ctx, "students/", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *HTTP) CreateStudent(ctx context.Context, draft StudentDraft) (model.Student, error) {
	var s model.Student
	err := c.sendForm(ctx, http.MethodPost, "students/", studentFields(draft), draft.PhotoPath, &s)
	return s, err
}

func (c *HTTP) UpdateStudent(ctx context.Context, id int, draft StudentDraft) (model.Student, error) {
	var s model.Student
	err := c.sendForm(ctx, http.MethodPut, detailPath("students", id), studentFields(draft), draft.PhotoPath, &s)
	return s, err
}

func (c *HTTP) DeleteStudent(ctx context.Context, id int) error {
	return c.del(ctx, detailPath("students", id))
}

// studentFields flattens a draft into multipart form fields; the photo is
// handled separately by sendForm.
func studentFields(d StudentDraft) map[string]string {
	return map[string]string{
		"name":        d.Name,
		"national_id": d.NationalID,
		"phone":       d.Phone,
		"status":      d.Status,
		"company":     strconv.Itoa(d.Company),
	}
}

// --- Companies ---

func (c *HTTP) ListCompanies(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	if err := c.get(ctx, "companies/", nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (c *HTTP) CreateCompany(ctx context.Context, draft CompanyDraft) (model.Company, error) {
	var out model.Company
	err := c.post(ctx, "companies/", companyPayload(draft), &out)
	return out, err
}

func (c *HTTP) UpdateCompany(ctx context.Context, id int, draft CompanyDraft) (model.Company, error) {
	var out model.Company
	err := c.put(ctx, detailPath("companies", id), companyPayload(draft), &out)
	return out, err
}

func (c *HTTP) DeleteCompany(ctx context.Context, id int) error {
	return c.del(ctx, detailPath("companies", id))
}

func companyPayload(d CompanyDraft) map[string]string {
	return map[string]string{
		"name":            d.Name,
		"address":         d.Address,
		"phone":           d.Phone,
		"supervisor_name": d.SupervisorName,
	}
}

// --- Evaluations ---

func (c *HTTP) ListEvaluations(ctx context.Context) ([]model.Evaluation, error) {
	var evals []model.Evaluation
	if err := c.get(ctx, "evaluations/", nil, &evals); err != nil {
		return nil, err
	}
	return evals, nil
}

func (c *HTTP) CreateEvaluation(ctx context.Context, draft EvaluationDraft) (model.Evaluation, error) {
	payload := map[string]any{
		"student":             draft.Student,
		"company":             draft.Company,
		"punctuality":         draft.Punctuality,
		"behavior":            draft.Behavior,
		"practical_skills":    draft.PracticalSkills,
		"learning_level":      draft.LearningLevel,
		"performance_quality": draft.PerformanceQuality,
		"teamwork":            draft.Teamwork,
		"notes":               draft.Notes,
		"result":              draft.Result,
	}
	if draft.RepeatDate != "" {
		payload["repeat_date"] = draft.RepeatDate
	}
	var out model.Evaluation
	err := c.post(ctx, "evaluations/", payload, &out)
	return out, err
}

func (c *HTTP) DeleteEvaluation(ctx context.Context, id int) error {
	return c.del(ctx, detailPath("evaluations", id))
}

// --- Training days ---

func (c *HTTP) ListTrainingDays(ctx context.Context) ([]model.TrainingDay, error) {
	var days []model.TrainingDay
	if err := c.get(ctx, "training-days/", nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (c *HTTP) CreateTrainingDay(ctx context.Context, draft TrainingDayDraft) (model.TrainingDay, error) {
	var out model.TrainingDay
	err := c.post(ctx, "training-days/", trainingDayPayload(draft), &out)
	return out, err
}

func (c *HTTP) UpdateTrainingDay(ctx context.Context, id int, draft TrainingDayDraft) (model.TrainingDay, error) {
	var out model.TrainingDay
	err := c.put(ctx, detailPath("training-days", id), trainingDayPayload(draft), &out)
	return out, err
}

func (c *HTTP) DeleteTrainingDay(ctx context.Context, id int) error {
	return c.del(ctx, detailPath("training-days", id))
}

func trainingDayPayload(d TrainingDayDraft) map[string]string {
	return map[string]string{"date": d.Date, "day_type": d.DayType}
}

// --- Users ---

func (c *HTTP) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.get(ctx, "users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTP) CreateUser(ctx context.Context, draft UserDraft) (model.User, error) {
	payload := map[string]string{
		"username": draft.Username,
		"email":    draft.Email,
		"password": draft.Password,
		"phone":    draft.Phone,
		"role":     draft.Role,
	}
	var out model.User
	err := c.post(ctx, "users/", payload, &out)
	return out, err
}

func (c *HTTP) DeleteUser(ctx context.Context, id int) error {
	return c.del(ctx, detailPath("users", id))
}

// --- Notifications ---

func (c *HTTP) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var notifs []model.Notification
	if err := c.get(ctx, "notifications/", nil, &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

func (c *HTTP) MarkNotificationRead(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("notifications/%d/read/", id), struct{}{}, nil)
}

// --- Attendance reports ---

func (c *HTTP) AttendanceReport(ctx context.Context, query ReportQuery) (model.AttendanceReport, error) {
	params := url.Values{"type": {query.Type}}
	switch query.Type {
	case ReportDaily:
		params.Set("date", query.Date)
	case ReportWeekly:
		params.Set("week", query.Week)
	case ReportMonthly:
		params.Set("month", query.Month)
	}
	var report model.AttendanceReport
	if err := c.get(ctx, "attendance-report/", params, &report); err != nil {
		return model.AttendanceReport{}, err
	}
	return report, nil
}

func detailPath(collection string, id int) string {
	return fmt.Sprintf("%s/%d/", collection, id)
}
