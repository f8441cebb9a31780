package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/akoreshkova/patternlock/internal/auth"
	"github.com/akoreshkova/patternlock/internal/common"
)

// App drives the interactive register/login loop.
type App struct {
	service *auth.Service
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(service *auth.Service, in io.Reader, out io.Writer) *App {
	return &App{
		service: service,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Register prompts for a username, image path and pattern, and creates the
// account.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	imagePath, err := GetSimpleText(a.reader, "Enter image path", a.out)
	if err != nil {
		return err
	}
	p, err := GetPattern(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid pattern: %v\n", err)
		return err
	}

	_, err = a.service.Register(ctx, username, imagePath, p)
	switch {
	case errors.Is(err, common.ErrUsernameTaken):
		fmt.Fprintln(a.out, "Username is already taken, pick another one.")
	case errors.Is(err, common.ErrInvalidPatternLength):
		fmt.Fprintln(a.out, "Pattern must contain 3 to 5 points.")
	case err != nil:
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
	default:
		fmt.Fprintf(a.out, "User %s registered.\n", username)
	}
	return err
}

// Login prompts for a username and runs one login session until success,
// lockout, or input error.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	session := a.service.NewSession(username)

	for {
		p, err := GetPattern(a.out)
		if err != nil {
			fmt.Fprintf(a.out, "Invalid pattern: %v\n", err)
			return err
		}

		res, err := session.Login(ctx, p)
		switch {
		case err == nil:
			fmt.Fprintf(a.out, "Welcome back, %s.\n", username)
			fmt.Fprintf(a.out, "Session token: %s\n", res.Token)
			return nil
		case errors.Is(err, common.ErrLocked):
			fmt.Fprintln(a.out, "Too many failed attempts. Session locked.")
			return err
		case errors.Is(err, common.ErrIntegrityViolation):
			fmt.Fprintln(a.out, "Account data is corrupted; contact an administrator.")
			return err
		case errors.Is(err, common.ErrAuthenticationFailed):
			fmt.Fprintf(a.out, "Authentication failed. %d attempts remaining.\n", session.Remaining())
		default:
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
			return err
		}
	}
}

// Run starts the read-eval loop. It exits on EOF, the exit command, or
// context cancellation, checked before each prompt.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "patternlock. Commands: register, login, exit")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := GetSimpleText(a.reader, "", a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch line {
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "exit", "quit":
			return nil
		case "help", "":
			fmt.Fprintln(a.out, "Commands: register, login, exit")
		default:
			fmt.Fprintf(a.out, "Unknown command %q\n", line)
		}
	}
}
