package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/models"
)

func (a *App) getStatus(ctx context.Context) string {
	acc, _ := a.sessions.Current(ctx)
	if acc == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", acc.Name)
}

// currentAccount is the guard every protected command calls first: without a
// session the command refuses and the user is pointed at login.
func (a *App) currentAccount(ctx context.Context) (*models.Account, bool) {
	acc, _ := a.sessions.Current(ctx)
	if acc == nil {
		fmt.Fprintln(a.out, "Please log in first (type 'login' or 'register').")
		return nil, false
	}
	return acc, true
}

func (a *App) printHelp(ctx context.Context) {
	if _, ok := a.currentAccountQuiet(ctx); ok {
		fmt.Fprintln(a.out, "Available commands: add, (l)ist, show, edit, delete, search, stats, logout, exit")
		return
	}
	fmt.Fprintln(a.out, "Available commands: register, login, exit")
}

func (a *App) currentAccountQuiet(ctx context.Context) (*models.Account, bool) {
	acc, _ := a.sessions.Current(ctx)
	return acc, acc != nil
}

// root runs the command loop. The loop exits on scanner EOF or when the user
// types "exit" or "quit". Command handlers report their own errors; the loop
// only dispatches.
func (a *App) root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the job application tracker (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "jobs %s> ", a.getStatus(ctx))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			a.printHelp(ctx)
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "add":
			_ = a.Add(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "show":
			_ = a.Show(ctx)
		case "edit":
			_ = a.Edit(ctx)
		case "delete":
			_ = a.Delete(ctx)
		case "search":
			_ = a.SearchCmd(ctx)
		case "stats":
			_ = a.StatsCmd(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}
