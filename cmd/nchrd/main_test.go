package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

func TestNewRootCmd_RegistersSubcommandsAndVersion(t *testing.T) {
	oldV := version
	version = "v9.9.9"
	defer func() { version = oldV }()

	cmd := newRootCmd()
	if cmd == nil {
		t.Fatalf("newRootCmd returned nil")
	}
	if cmd.Version != "v9.9.9" {
		t.Fatalf("expected version v9.9.9, got %s", cmd.Version)
	}

	names := []string{"login", "logout", "passwd", "students", "companies", "evaluations", "training-days", "users", "notifications", "report"}
	for _, n := range names {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == n {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected subcommand %s to be registered", n)
		}
	}
}

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	runErr := fn()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	return buf.String(), runErr
}

func TestStudentsCmd_RendersListing(t *testing.T) {
	i18n.Init("en")
	oldClient := client
	defer func() { client = oldClient }()
	client = api.NewMockClient(nil, api.MockClientOverwrites{
		ListStudents: func(ctx context.Context) ([]model.Student, error) {
			return []model.Student{{ID: 1, Name: "Sara", Status: model.StudentActive, Company: 2}}, nil
		},
		ListCompanies: func(ctx context.Context) ([]model.Company, error) {
			return []model.Company{{ID: 2, Name: "Acme"}}, nil
		},
	})

	cmd := newStudentsCmd()
	cmd.SetContext(context.Background())
	out, err := captureStdout(t, func() error { return cmd.RunE(cmd, nil) })
	if err != nil {
		t.Fatalf("students command failed: %v", err)
	}
	for _, want := range []string{"Sara", "Acme", i18n.T("students.col.name")} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in listing:\n%s", want, out)
		}
	}
}

func TestReportCmd_RequiresMatchingPeriod(t *testing.T) {
	i18n.Init("en")
	oldClient := client
	defer func() { client = oldClient }()
	client = api.NewMockClient(nil, api.MockClientOverwrites{})

	cmd := newReportCmd()
	cmd.SetContext(context.Background())
	if err := cmd.Flags().Set("type", "monthly"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := cmd.RunE(cmd, nil); err == nil {
		t.Fatalf("expected error for monthly report without --month")
	}
}

func TestReportCmd_PrintsSummary(t *testing.T) {
	i18n.Init("en")
	oldClient := client
	defer func() { client = oldClient }()
	var gotQuery api.ReportQuery
	client = api.NewMockClient(nil, api.MockClientOverwrites{
		AttendanceReport: func(ctx context.Context, query api.ReportQuery) (model.AttendanceReport, error) {
			gotQuery = query
			return model.AttendanceReport{
				DateRange:      "2024-03-01 - 2024-03-31",
				TotalStudents:  4,
				TotalRecords:   80,
				Present:        72,
				Absent:         8,
				AttendanceRate: 90.0,
				Records: []model.AttendanceRecord{
					{ID: 1, StudentName: "Sara", CompanyName: "Acme", Date: "2024-03-04", Status: model.AttendancePresent},
				},
			}, nil
		},
	})

	cmd := newReportCmd()
	cmd.SetContext(context.Background())
	if err := cmd.Flags().Set("type", "monthly"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := cmd.Flags().Set("month", "2024-03"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	out, err := captureStdout(t, func() error { return cmd.RunE(cmd, nil) })
	if err != nil {
		t.Fatalf("report command failed: %v", err)
	}
	if gotQuery.Type != api.ReportMonthly || gotQuery.Month != "2024-03" {
		t.Fatalf("unexpected query %#v", gotQuery)
	}
	for _, want := range []string{"2024-03-01 - 2024-03-31", "90.0%", "Sara"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in report output:\n%s", want, out)
		}
	}
}
