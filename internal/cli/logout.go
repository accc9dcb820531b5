package cli

import (
	"context"
	"log"
)

// Logout ends the session. The server call is best-effort; local state is
// always cleared.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	log.Printf("Logged out")
	return nil
}
