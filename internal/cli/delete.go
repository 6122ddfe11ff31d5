package cli

import (
	"context"
	"fmt"
)

// Delete removes one record after explicit confirmation; there is no undo.
func (a *App) Delete(ctx context.Context) error {
	acc, ok := a.currentAccount(ctx)
	if !ok {
		return nil
	}

	id, err := a.promptRecordID("Enter record id to delete")
	if err != nil {
		return err
	}

	if !confirm(a.reader, "Are you sure you want to delete this application?", a.out) {
		return nil
	}

	if err := a.apps.Remove(ctx, acc.ID, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.log.Info(ctx, "application deleted", "id", id)
	fmt.Fprintf(a.out, "Deleted application %d.\n", id)
	return nil
}
