// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

// commands.go holds the non-interactive subcommands: authentication,
// read-only entity listings and the attendance report.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"

	"github.com/nchrd/console/internal/api"
)

// clientErr rewords an authentication failure into the re-login hint; every
// other error passes through for Cobra to print.
func clientErr(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return errors.New(i18n.T("login.expired"))
	}
	return err
}

// newListTable returns a writer configured the way every listing renders.
func newListTable(headers ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(headers)
	return t
}

// orDash keeps empty cells readable in the plain listings.
func orDash(s string) string {
	if s == "" {
		return "–"
	}
	return s
}

// readPassword prompts for a password without echo. It falls back to a plain
// line read when stdin is not a terminal, which keeps scripted use working.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt + ": ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		defer fmt.Println()
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func readLine(prompt string) (string, error) {
	fmt.Print(prompt + ": ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [username]",
		Short: "Sign in and store the credential for later commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var username string
			var err error
			if len(args) == 1 {
				username = args[0]
			} else {
				username, err = readLine(i18n.T("login.username"))
				if err != nil {
					return err
				}
			}
			password, err := readPassword(i18n.T("login.password"))
			if err != nil {
				return err
			}

			tokens, err := client.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			if err := sess.SetTokens(tokens.Access, tokens.Refresh); err != nil {
				return err
			}
			fmt.Println(i18n.T("login.success"))
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sess.Clear(); err != nil {
				return err
			}
			fmt.Println(i18n.T("login.signed_out"))
			return nil
		},
	}
}

func newPasswdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the password of the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			oldPassword, err := readPassword(i18n.T("profile.old_password"))
			if err != nil {
				return err
			}
			newPassword, err := readPassword(i18n.T("profile.new_password"))
			if err != nil {
				return err
			}
			confirm, err := readPassword(i18n.T("profile.confirm"))
			if err != nil {
				return err
			}
			if newPassword != confirm {
				return errors.New(i18n.T("profile.mismatch"))
			}
			if err := client.ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
				return clientErr(err)
			}
			fmt.Println(i18n.T("profile.changed"))
			return nil
		},
	}
}

func newStudentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List students",
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := client.ListStudents(cmd.Context())
			if err != nil {
				return clientErr(err)
			}
			companies, err := client.ListCompanies(cmd.Context())
			if err != nil {
				return clientErr(err)
			}
			names := make(map[int]string, len(companies))
			for _, c := range companies {
				names[c.ID] = c.Name
			}

			t := newListTable("ID",
				i18n.T("students.col.name"),
				i18n.T("students.col.national_id"),
				i18n.T("students.col.phone"),
				i18n.T("students.col.status"),
				i18n.T("students.col.company"))
			for _, s := range students {
				t.AppendRow(table.Row{s.ID, s.Name, orDash(s.NationalID), orDash(s.Phone), s.Status, orDash(names[s.Company])})
			}
			t.Render()
			return nil
		},
	}
}

func newCompaniesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "companies",
		Short: "List training companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			companies, err := client.ListCompanies(cmd.Context())
			if err != nil {
				return clientErr(err)
			}
			t := newListTable("ID",
				i18n.T("companies.col.name"),
				i18n.T("companies.col.address"),
				i18n.T("companies.col.phone"),
				i18n.T("companies.col.supervisor"))
			for _, c := range companies {
				t.AppendRow(table.Row{c.ID, c.Name, orDash(c.Address), orDash(c.Phone), orDash(c.SupervisorName)})
			}
			t.Render()
			return nil
		},
	}
}

func newEvaluationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluations",
		Short: "List student evaluations",
		RunE: func(cmd *cobra.Command, args []string) error {
			evaluations, err := client.ListEvaluations(cmd.Context())
			if err != nil {
				return clientErr(err)
			}
			students, err := client.ListStudents(cmd.Context())
			if err != nil {
				return clientErr(err)
			}
			names := make(map[int]string, len(students))
			for _, s := range students {
				names[s.ID] = s.Name
			}

			t := newListTable("ID",
				i18n.T("evaluations.col.student"),
				i18n.T("evaluations.col.date"),
				i18n.T("evaluations.col.result"),
				i18n.T("evaluations.form.notes"))
			for _, e := range evaluations {
				t.AppendRow(table.Row{e.ID, orDash(names[e.Student]), orDash(e.Date), e.Result, orDash(e.Notes)})
			}
			t.Render()
			return nil
		},
	}
}

func newTrainingDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "training-days",
		Short: "List the training calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := client.ListTrainingDays(cmd.Context())
			if err != nil {
				return clientErr(err)
			}
			t := newListTable("ID",
				i18n.T("training_days.col.date"),
				i18n.T("training_days.col.day_type"))
			for _, d := range days {
				t.AppendRow(table.Row{d.ID, d.Date, d.DayType})
			}
			t.Render()
			return nil
		},
	}
}

func newUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List system users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := client.ListUsers(cmd.Context())
			if err != nil {
				return clientErr(err)
			}
			t := newListTable("ID",
				i18n.T("users.col.username"),
				i18n.T("users.col.email"),
				i18n.T("users.col.phone"),
				i18n.T("users.col.role"))
			for _, u := range users {
				t.AppendRow(table.Row{u.ID, u.Username, orDash(u.Email), orDash(u.Phone), u.Role})
			}
			t.Render()
			return nil
		},
	}
}

func newNotificationsCmd() *cobra.Command {
	var markRead int
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if markRead > 0 {
				if err := client.MarkNotificationRead(cmd.Context(), markRead); err != nil {
					return clientErr(err)
				}
				fmt.Println(i18n.T("notifications.marked"))
				return nil
			}

			notifications, err := client.ListNotifications(cmd.Context())
			if err != nil {
				return clientErr(err)
			}
			t := newListTable("ID",
				i18n.T("notifications.col.title"),
				i18n.T("notifications.col.message"),
				i18n.T("notifications.col.created"),
				i18n.T("notifications.col.read"))
			for _, n := range notifications {
				read := i18n.T("notifications.read_no")
				if n.IsRead {
					read = i18n.T("notifications.read_yes")
				}
				t.AppendRow(table.Row{n.ID, n.Title, orDash(n.Message), orDash(n.CreatedAt), read})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&markRead, "mark-read", 0, "mark the notification with this ID as read instead of listing")
	return cmd
}

func newReportCmd() *cobra.Command {
	var reportType, date, week, month string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run an attendance report",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := api.ReportQuery{Type: reportType, Date: date, Week: week, Month: month}
			switch reportType {
			case api.ReportDaily:
				if date == "" {
					return errors.New(i18n.T("form.required", i18n.T("reports.date")))
				}
			case api.ReportWeekly:
				if week == "" {
					return errors.New(i18n.T("form.required", i18n.T("reports.week")))
				}
			case api.ReportMonthly:
				if month == "" {
					return errors.New(i18n.T("form.required", i18n.T("reports.month")))
				}
			default:
				return fmt.Errorf("unknown report type %q", reportType)
			}

			report, err := client.AttendanceReport(cmd.Context(), query)
			if err != nil {
				return clientErr(err)
			}
			printReport(report)
			return nil
		},
	}
	cmd.Flags().StringVar(&reportType, "type", api.ReportDaily, "report period type (daily, weekly, monthly)")
	cmd.Flags().StringVar(&date, "date", "", "date for daily reports (YYYY-MM-DD)")
	cmd.Flags().StringVar(&week, "week", "", "ISO week for weekly reports (YYYY-Www)")
	cmd.Flags().StringVar(&month, "month", "", "month for monthly reports (YYYY-MM)")
	return cmd
}

func printReport(report model.AttendanceReport) {
	fmt.Printf("%s: %s\n", i18n.T("reports.summary.range"), report.DateRange)
	fmt.Printf("%s: %d  %s: %d\n",
		i18n.T("reports.summary.students"), report.TotalStudents,
		i18n.T("reports.summary.records"), report.TotalRecords)
	fmt.Printf("%s: %d  %s: %d (%s: %d, %s: %d)\n",
		i18n.T("reports.summary.present"), report.Present,
		i18n.T("reports.summary.absent"), report.Absent,
		i18n.T("reports.summary.with_reason"), report.AbsentWithReason,
		i18n.T("reports.summary.without_reason"), report.AbsentWithoutReason)
	fmt.Printf("%s: %.1f%%\n\n", i18n.T("reports.summary.rate"), report.AttendanceRate)

	if len(report.Records) == 0 {
		return
	}
	t := newListTable(
		i18n.T("reports.col.student"),
		i18n.T("reports.col.company"),
		i18n.T("reports.col.date"),
		i18n.T("reports.col.status"),
		i18n.T("reports.col.reason"))
	for _, r := range report.Records {
		t.AppendRow(table.Row{r.StudentName, orDash(r.CompanyName), r.Date, r.Status, orDash(r.Reason)})
	}
	t.Render()
}
