package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/zenith-music/zenith/internal/models"
	"github.com/zenith-music/zenith/internal/server"
	"github.com/zenith-music/zenith/internal/services"
	"github.com/zenith-music/zenith/internal/shared"
)

// AuthLogin exchanges credentials for a token, stores the session locally and
// runs the Spotify authorization hand-off unless --no-spotify is set.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	password := cmd.String("password")

	r.logger.Infof("logging in as %v", username)

	token, err := r.backend.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	db, store, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	session := models.Session{Token: token, Username: username}
	if err := store.SaveSession(session); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	r.writePlain("✓ Logged in as %s\n", username)

	if cmd.Bool("no-spotify") {
		return nil
	}
	return r.connectSpotify(ctx, username)
}

// connectSpotify fetches the Spotify authorization URL, opens it in the
// browser and waits for the redirect to hit the local callback server. The
// backend performs the code exchange; the client only observes completion.
func (r *Runner) connectSpotify(ctx context.Context, username string) error {
	authURL, err := r.backend.SpotifyLoginURL(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to fetch Spotify authorization URL: %w", err)
	}

	handler := server.NewCallbackHandler()
	router := server.NewBasicRouter()
	router.Handler(handler)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for Spotify authorization...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.CallbackResult

	select {
	case result = <-handler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return fmt.Errorf("authorization failed: %w", result.Error())
	}

	r.writePlain("✓ Spotify connected\n")
	return nil
}

// AuthSignup creates a new account. The user still has to log in afterwards.
func (r *Runner) AuthSignup(ctx context.Context, cmd *cli.Command) error {
	reg := services.Registration{
		Username: cmd.String("username"),
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
	}

	r.logger.Infof("creating account for %v", reg.Username)

	if err := r.backend.Register(ctx, reg); err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	r.writePlain("✓ Account created\n")
	r.writePlain("Log in with: zenith auth login -u %s -p <password>\n", reg.Username)
	return nil
}

// AuthLogout clears the stored session. Locally edited profile fields stay.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	db, store, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.ClearSession(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return r.writePlain("✓ Logged out\n")
}

// AuthStatus shows the stored session state.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	db, store, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := store.Session()
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if !session.Valid() {
		return r.writePlain("✗ Not logged in\n")
	}

	r.writePlain("✓ Logged in as %s\n", session.Username)
	return nil
}
