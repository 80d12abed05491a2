// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"encoding/json"
	"testing"
)

func TestStudent_Field(t *testing.T) {
	s := Student{ID: 5, Name: "Ahmed", NationalID: "29805120100123", Status: StudentActive, Company: 3}
	if got := s.Field("name"); got != "Ahmed" {
		t.Fatalf("name field = %q", got)
	}
	if got := s.Field("company"); got != "3" {
		t.Fatalf("company field = %q, want foreign key as string", got)
	}
	if got := s.Field("phone"); got != "" {
		t.Fatalf("empty phone should yield empty string, got %q", got)
	}
	if got := s.Field("nonsense"); got != "" {
		t.Fatalf("unknown field should yield empty string, got %q", got)
	}
	if s.RecordID() != 5 {
		t.Fatalf("RecordID = %d", s.RecordID())
	}
}

func TestStudent_UnsetCompanyRendersEmpty(t *testing.T) {
	s := Student{ID: 1, Name: "x"}
	if got := s.Field("company"); got != "" {
		t.Fatalf("unset company should be empty, got %q", got)
	}
}

func TestAttendanceReport_Decode(t *testing.T) {
	payload := `{
		"date_range": "2024-03-01 -> 2024-03-31",
		"total_students": 12,
		"total_records": 40,
		"present": 30,
		"absent": 10,
		"absent_with_reason": 4,
		"absent_without_reason": 6,
		"attendance_rate": 75.0,
		"records": [
			{"id": 1, "student": 2, "company": 3, "student_name": "Ahmed",
			 "company_name": "Delta", "date": "2024-03-05", "status": "present", "reason": null}
		]
	}`
	var r AttendanceReport
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if r.TotalRecords != 40 || r.Present != 30 || r.Absent != 10 {
		t.Fatalf("unexpected counts: %+v", r)
	}
	if r.AttendanceRate != 75.0 {
		t.Fatalf("attendance rate = %v", r.AttendanceRate)
	}
	if len(r.Records) != 1 || r.Records[0].StudentName != "Ahmed" {
		t.Fatalf("records not decoded: %+v", r.Records)
	}
	if got := r.Records[0].Field("reason"); got != "" {
		t.Fatalf("null reason should render empty, got %q", got)
	}
}

func TestUser_PasswordOmittedWhenEmpty(t *testing.T) {
	b, err := json.Marshal(User{ID: 1, Username: "admin", Role: RoleAdmin})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["password"]; ok {
		t.Fatalf("password must not be serialized when empty: %s", b)
	}
}
