package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/fretboard-keeper/internal/adapter"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/models"
)

// stdio is the file name that makes export and import use stdout and stdin.
const stdio = "-"

type App struct {
	server adapter.ServerAdapter
	tokens TokenStore

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp builds the CLI. Human-readable results go to out; exported data
// goes to out only when the target file is "-".
func NewApp(server adapter.ServerAdapter, tokens TokenStore, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		server: server,
		tokens: tokens,
		in:     in,
		out:    out,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected one of login, verify, export, import, logout", ErrMissingArgs)
	}

	command, rest := args[0], args[1:]
	switch command {
	case "login":
		if len(rest) != 1 {
			return fmt.Errorf("%w: login <username>", ErrMissingArgs)
		}
		return a.login(ctx, rest[0])
	case "verify":
		return a.verify(ctx)
	case "export":
		if len(rest) != 1 {
			return fmt.Errorf("%w: export <file>", ErrMissingArgs)
		}
		return a.export(ctx, rest[0])
	case "import":
		if len(rest) != 1 {
			return fmt.Errorf("%w: import <file>", ErrMissingArgs)
		}
		return a.importFile(ctx, rest[0])
	case "logout":
		return a.tokens.Remove()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) login(ctx context.Context, username string) error {
	resp, err := a.server.Login(ctx, username)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err = a.tokens.Save(resp.Token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %s\n", resp.Message, resp.Username)
	return nil
}

func (a *App) verify(ctx context.Context) error {
	if err := a.restoreSession(); err != nil {
		return err
	}

	resp, err := a.server.Verify(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		a.logger.Debug().Err(err).Msg("stored token rejected")
		return fmt.Errorf("session expired or replaced by a newer login: %w", err)
	}
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	fmt.Fprintf(a.out, "logged in as %s\n", resp.Username)
	return nil
}

func (a *App) export(ctx context.Context, path string) error {
	if err := a.restoreSession(); err != nil {
		return err
	}

	data, err := a.server.Load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	backup := models.ReplaceRequest{Directories: data.Directories, States: data.States}
	raw, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	raw = append(raw, '\n')

	if path == stdio {
		_, err = a.out.Write(raw)
		return err
	}
	if err = os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	a.logger.Info().Str("file", path).Int("directories", len(backup.Directories)).Int("states", len(backup.States)).Msg("backup exported")
	fmt.Fprintf(a.out, "exported %d directories and %d states to %s\n", len(backup.Directories), len(backup.States), path)
	return nil
}

// importFile replaces everything stored on the server with the backup.
func (a *App) importFile(ctx context.Context, path string) error {
	if err := a.restoreSession(); err != nil {
		return err
	}

	raw, err := a.readInput(path)
	if err != nil {
		return err
	}

	var backup models.ReplaceRequest
	if err = json.Unmarshal(raw, &backup); err != nil {
		return fmt.Errorf("decode backup %s: %w", path, err)
	}

	resp, err := a.server.Save(ctx, backup)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}

func (a *App) readInput(path string) ([]byte, error) {
	if path == stdio {
		raw, err := io.ReadAll(a.in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	return raw, nil
}

func (a *App) restoreSession() error {
	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	a.server.SetToken(token)
	return nil
}
