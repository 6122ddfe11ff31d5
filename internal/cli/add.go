package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/models"
)

func portalOptions() string {
	names := make([]string, 0, len(models.KnownPortals()))
	for _, p := range models.KnownPortals() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

func statusOptions() string {
	names := make([]string, 0, len(models.KnownStatuses()))
	for _, s := range models.KnownStatuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// promptRecord fills a record from user input. Prompts show the current
// value; entering nothing keeps it, so a zero base works for a fresh record.
func (a *App) promptRecord(base models.ApplicationRecord) (models.ApplicationRecord, error) {
	fields := []struct {
		label string
		value *string
	}{
		{"Company", &base.Company},
		{"Position", &base.Position},
		{"Portal (" + portalOptions() + ")", (*string)(&base.Portal)},
		{"Status (" + statusOptions() + ")", (*string)(&base.Status)},
		{"Date applied (YYYY-MM-DD)", &base.DateApplied},
		{"Salary (optional)", &base.Salary},
		{"Location (optional)", &base.Location},
		{"Job URL (optional)", &base.JobURL},
		{"Company logo URL (optional)", &base.CompanyLogo},
		{"Notes (optional)", &base.Notes},
	}

	for _, f := range fields {
		label := f.label
		if *f.value != "" {
			label = fmt.Sprintf("%s [%s]", f.label, *f.value)
		}
		input, err := getSimpleText(a.reader, label, a.out)
		if err != nil {
			return base, err
		}
		if input != "" {
			*f.value = input
		}
	}
	return base, nil
}

// Add creates a record in the current account's collection.
func (a *App) Add(ctx context.Context) error {
	acc, ok := a.currentAccount(ctx)
	if !ok {
		return nil
	}

	draft, err := a.promptRecord(models.ApplicationRecord{Status: models.StatusApplied})
	if err != nil {
		return err
	}

	created, err := a.apps.Add(ctx, acc.ID, draft)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.log.Info(ctx, "application added", "id", created.ID, "company", created.Company)
	fmt.Fprintf(a.out, "Added application %d: %s, %s\n", created.ID, created.Company, created.Position)
	return nil
}
