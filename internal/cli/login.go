package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/fleetdesk/fleetcli/internal/common"
)

// Login prompts for credentials and authenticates against the server.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			log.Printf("Invalid username or password")
		} else if errors.Is(err, common.ErrUnavailable) {
			log.Printf("Server unavailable")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	log.Printf("Login successful")
	return nil
}
