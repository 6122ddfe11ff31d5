package cli

import (
	"context"
	"fmt"

	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/models"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/query"
)

func (a *App) printRecordLine(rec models.ApplicationRecord) {
	fmt.Fprintf(a.out, "%d  %-20s %-25s %-20s %s\n", rec.ID, rec.Company, rec.Position, rec.Status, rec.DateApplied)
}

// List prints the current account's collection in insertion order.
func (a *App) List(ctx context.Context) error {
	acc, ok := a.currentAccount(ctx)
	if !ok {
		return nil
	}

	records, err := a.apps.List(ctx, acc.ID)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "No applications yet. Type 'add' to track one.")
		return nil
	}
	for _, rec := range records {
		a.printRecordLine(rec)
	}
	return nil
}

// Show prints every field of a single record.
func (a *App) Show(ctx context.Context) error {
	acc, ok := a.currentAccount(ctx)
	if !ok {
		return nil
	}

	id, err := a.promptRecordID("Enter record id to show")
	if err != nil {
		return err
	}

	records, err := a.apps.List(ctx, acc.ID)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	for _, rec := range records {
		if rec.ID != id {
			continue
		}
		fmt.Fprintf(a.out, "Company:      %s\n", rec.Company)
		fmt.Fprintf(a.out, "Position:     %s\n", rec.Position)
		fmt.Fprintf(a.out, "Portal:       %s\n", rec.Portal)
		fmt.Fprintf(a.out, "Status:       %s\n", rec.Status)
		fmt.Fprintf(a.out, "Date applied: %s\n", rec.DateApplied)
		if rec.Salary != "" {
			fmt.Fprintf(a.out, "Salary:       %s\n", rec.Salary)
		}
		if rec.Location != "" {
			fmt.Fprintf(a.out, "Location:     %s\n", rec.Location)
		}
		if rec.JobURL != "" {
			fmt.Fprintf(a.out, "Job URL:      %s\n", rec.JobURL)
		}
		if rec.CompanyLogo != "" {
			fmt.Fprintf(a.out, "Logo URL:     %s\n", rec.CompanyLogo)
		}
		if rec.Notes != "" {
			fmt.Fprintf(a.out, "Notes:        %s\n", rec.Notes)
		}
		return nil
	}

	fmt.Fprintln(a.out, "No record with that id.")
	return nil
}

// SearchCmd prints the records matching a term and an optional status filter.
func (a *App) SearchCmd(ctx context.Context) error {
	acc, ok := a.currentAccount(ctx)
	if !ok {
		return nil
	}

	term, err := getSimpleText(a.reader, "Search term (empty matches all)", a.out)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status filter ("+statusOptions()+", or 'all')", a.out)
	if err != nil {
		return err
	}
	if status == "" {
		status = query.StatusAll
	}

	records, err := a.apps.List(ctx, acc.ID)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	matched := query.Combine(records, term, status)
	if len(matched) == 0 {
		fmt.Fprintln(a.out, "No matching applications.")
		return nil
	}
	for _, rec := range matched {
		a.printRecordLine(rec)
	}
	return nil
}

// StatsCmd prints the dashboard counters.
func (a *App) StatsCmd(ctx context.Context) error {
	acc, ok := a.currentAccount(ctx)
	if !ok {
		return nil
	}

	records, err := a.apps.List(ctx, acc.ID)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	stats := query.Summarize(records)
	fmt.Fprintf(a.out, "Total: %d  Applied: %d  Interviews: %d  Offers: %d\n",
		stats.Total, stats.Applied, stats.Interviews, stats.Offers)
	return nil
}
