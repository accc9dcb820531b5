package cli

import (
	"context"
	"fmt"
)

// Whoami prints the identity of the current session.
func (a *App) Whoami(ctx context.Context) error {
	user := a.auth.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s (%s)\n", user.Username, user.Role)
	return nil
}
