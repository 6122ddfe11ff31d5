package cli

import (
	"context"
	"fmt"
	"strconv"
)

// promptRecordID reads and parses a record id.
func (a *App) promptRecordID(prompt string) (int64, error) {
	text, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Record ids are numeric.")
		return 0, err
	}
	return id, nil
}

// Edit replaces the fields of one record, keeping its id and owner.
func (a *App) Edit(ctx context.Context) error {
	acc, ok := a.currentAccount(ctx)
	if !ok {
		return nil
	}

	id, err := a.promptRecordID("Enter record id to edit")
	if err != nil {
		return err
	}

	records, err := a.apps.List(ctx, acc.ID)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	pos := -1
	for i, rec := range records {
		if rec.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		fmt.Fprintln(a.out, "No record with that id.")
		return nil
	}

	fields, err := a.promptRecord(records[pos])
	if err != nil {
		return err
	}

	updated, err := a.apps.Update(ctx, acc.ID, id, fields)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.log.Info(ctx, "application updated", "id", updated.ID)
	fmt.Fprintf(a.out, "Updated application %d.\n", updated.ID)
	return nil
}
