// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

// errRequired builds the standard required-field validation error.
func errRequired(label string) error {
	return errors.New(i18n.T("form.required", label))
}

func errRatingRange(label string) error {
	return errors.New(i18n.T("evaluations.form.rating_range", label))
}

func errRepeatRequired() error {
	return errors.New(i18n.T("evaluations.form.repeat_required"))
}

func errDateFormat() error {
	return errors.New(i18n.T("training_days.form.date_format"))
}

func errEmailInvalid() error {
	return errors.New(i18n.T("users.form.email_invalid"))
}

// apiErrorText flattens an error for display. Validation answers surface
// their field messages joined in stable order.
func apiErrorText(err error) string {
	if apiErr, ok := api.AsError(err); ok {
		if apiErr.Message != "" {
			return i18n.T("status.error", apiErr.Message)
		}
		if len(apiErr.Fields) > 0 {
			keys := make([]string, 0, len(apiErr.Fields))
			for k := range apiErr.Fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			parts := make([]string, 0, len(keys))
			for _, k := range keys {
				parts = append(parts, k+": "+apiErr.Fields[k][0])
			}
			return i18n.T("status.error", strings.Join(parts, "; "))
		}
	}
	return i18n.T("status.error", err.Error())
}

// fieldErrors extracts the per-field validation messages from err, if any.
func fieldErrors(err error) map[string]string {
	apiErr, ok := api.AsError(err)
	if !ok || len(apiErr.Fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(apiErr.Fields))
	for field, msgs := range apiErr.Fields {
		if len(msgs) > 0 {
			out[field] = msgs[0]
		}
	}
	return out
}

// companyNames builds the ID-to-name lookup used by table columns and forms.
func companyNames(companies []model.Company) map[string]string {
	out := make(map[string]string, len(companies))
	for _, c := range companies {
		out[strconv.Itoa(c.ID)] = c.Name
	}
	return out
}

// clampCursor keeps the list cursor inside the row range after a refetch.
func clampCursor(cursor, length int) int {
	if cursor >= length {
		cursor = length - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
