// Package flow drives an interactive tutoring-booking session as a state
// machine:
//
//	MainMenu ─1─▶ Registering ──────────────┐
//	    │                                    ▼
//	    ├──2─▶ Authenticating ──────▶ AreaBrowser ◀──────────┐
//	    │            │ unknown email      │   │              │
//	    │            └──▶ Registering     │   └─▶ SessionBrowser ─▶ Confirming
//	    └──3─▶ Terminated     logout ◀────┘
//
// Each state reads what it needs from Input, prints results to the writer
// and names the next state. Failures of any kind are reported to the user
// and send the flow back to the nearest menu; only input errors end Run.
//
// The flow is strictly sequential and starts no goroutines.
package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/tutorbook/internal/catalog"
	"github.com/dmitrijs2005/tutorbook/internal/common"
	"github.com/dmitrijs2005/tutorbook/internal/logging"
	"github.com/dmitrijs2005/tutorbook/internal/users"
	"github.com/dmitrijs2005/tutorbook/internal/validation"
)

// newSessionID is a test seam for uuid.NewString.
var newSessionID = uuid.NewString

var errNotNumber = fmt.Errorf("%w: not a number", common.ErrInvalidMenuSelection)

// Flow is one interactive run. It is not safe for concurrent use.
type Flow struct {
	store    CredentialStore
	catalog  Catalog
	bookings ReservationLog
	in       Input
	out      io.Writer
	logger   logging.Logger
	styles   styles

	state State

	// set while a user is logged in
	user       *users.User
	sessionLog logging.Logger

	// set by the state that hands over to the next one
	inlineSignup bool
	pendingEmail string
	area         string
	session      catalog.Session
}

// New returns a Flow positioned at MainMenu.
func New(store CredentialStore, cat Catalog, bookings ReservationLog, in Input, out io.Writer, logger logging.Logger) *Flow {
	return &Flow{
		store:    store,
		catalog:  cat,
		bookings: bookings,
		in:       in,
		out:      out,
		logger:   logger,
		styles:   newStyles(out),
		state:    MainMenu,
	}
}

// State returns the current state.
func (f *Flow) State() State {
	return f.state
}

// Run steps the machine until it reaches Terminated. Running out of input
// (io.EOF) terminates the flow normally; any other input error is returned.
func (f *Flow) Run(ctx context.Context) error {
	for f.state != Terminated {
		next, err := f.step(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				f.logger.Debug(ctx, "input closed", "state", f.state.String())
				f.endSession(ctx)
				f.state = Terminated
				break
			}
			return err
		}
		f.state = next
	}

	f.println(msgGoodbye)
	return nil
}

func (f *Flow) step(ctx context.Context) (State, error) {
	switch f.state {
	case MainMenu:
		return f.mainMenu()
	case Registering:
		return f.register(ctx)
	case Authenticating:
		return f.authenticate(ctx)
	case AreaBrowser:
		return f.browseAreas(ctx)
	case SessionBrowser:
		return f.browseSessions()
	case Confirming:
		return f.confirm(ctx)
	}
	return Terminated, nil
}

func (f *Flow) mainMenu() (State, error) {
	f.println("")
	f.println(f.styles.title.Render(titleMainMenu))
	f.println(optRegister)
	f.println(optLogin)
	f.println(optExit)

	line, err := f.in.ReadLine(promptOption)
	if err != nil {
		return MainMenu, err
	}

	switch choice, err := parseChoice(line, 3); {
	case err != nil:
		f.fail(msgInvalidOption)
		return MainMenu, nil
	case choice == 1:
		f.inlineSignup, f.pendingEmail = false, ""
		return Registering, nil
	case choice == 2:
		return Authenticating, nil
	default:
		return Terminated, nil
	}
}

// register creates an account from a fresh email prompt, or from the email
// entered at a failed login when inlineSignup is set. That email is used as
// typed, even when empty.
func (f *Flow) register(ctx context.Context) (State, error) {
	email, inline := f.pendingEmail, f.inlineSignup
	f.inlineSignup, f.pendingEmail = false, ""

	if !inline {
		var err error
		if email, err = f.in.ReadLine(promptEmail); err != nil {
			return MainMenu, err
		}
	}

	if !validation.IsValidEmail(email) {
		f.fail(msgInvalidEmail)
		return MainMenu, nil
	}
	if f.store.Exists(email) {
		f.fail(msgDuplicateEmail)
		return MainMenu, nil
	}

	password, err := f.in.ReadSecret(promptPassword)
	if err != nil {
		return MainMenu, err
	}

	user, err := f.store.Register(ctx, email, password)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrPersistence) && user != nil:
		f.fail(msgNotSaved)
	case errors.Is(err, common.ErrWeakPassword):
		f.fail(msgWeakPassword)
		return MainMenu, nil
	case errors.Is(err, common.ErrInvalidEmail):
		f.fail(msgInvalidEmail)
		return MainMenu, nil
	case errors.Is(err, common.ErrDuplicateEmail):
		f.fail(msgDuplicateEmail)
		return MainMenu, nil
	default:
		f.logger.Error(ctx, "registration failed", "email", email, "error", err)
		f.fail(msgRegisterFailed)
		return MainMenu, nil
	}

	if inline {
		f.ok(msgRegisteredInline)
	} else {
		f.ok(msgRegistered)
	}
	f.startSession(ctx, user)
	return AreaBrowser, nil
}

func (f *Flow) authenticate(ctx context.Context) (State, error) {
	email, err := f.in.ReadLine(promptLoginEmail)
	if err != nil {
		return MainMenu, err
	}
	password, err := f.in.ReadSecret(promptLoginPassword)
	if err != nil {
		return MainMenu, err
	}

	user, err := f.store.Authenticate(ctx, email, password)
	if err == nil {
		f.ok(msgLoginOK)
		f.startSession(ctx, user)
		return AreaBrowser, nil
	}

	f.fail(msgBadCredentials)
	if f.store.Exists(email) {
		return MainMenu, nil
	}

	answer, err := f.in.ReadLine(promptInlineSignup)
	if err != nil {
		return MainMenu, err
	}
	if !isYes(answer) {
		f.println(msgCancelled)
		return MainMenu, nil
	}

	f.inlineSignup, f.pendingEmail = true, email
	return Registering, nil
}

func (f *Flow) browseAreas(ctx context.Context) (State, error) {
	if f.user == nil {
		return MainMenu, nil
	}

	areas := f.catalog.Areas()

	f.println("")
	f.println(f.styles.title.Render(titleAreas))
	for i, a := range areas {
		f.printf("%d. %s\n", i+1, a)
	}
	f.printf(optLogout+"\n", len(areas)+1)

	line, err := f.in.ReadLine(promptArea)
	if err != nil {
		return AreaBrowser, err
	}

	choice, err := parseChoice(line, len(areas)+1)
	switch {
	case errors.Is(err, errNotNumber):
		f.fail(msgInvalidEntry)
		return AreaBrowser, nil
	case err != nil:
		f.fail(msgInvalidOption)
		return AreaBrowser, nil
	case choice == len(areas)+1:
		f.println(msgLoggedOut)
		f.endSession(ctx)
		return MainMenu, nil
	}

	f.area = areas[choice-1]
	return SessionBrowser, nil
}

func (f *Flow) browseSessions() (State, error) {
	sessions := f.catalog.SessionsInArea(f.area)

	f.println("")
	f.println(f.styles.title.Render(fmt.Sprintf(titleSessions, f.area)))
	for i, s := range sessions {
		f.printf(sessionInstructor+"\n", i+1, s.Instructor)
		f.printf(sessionDate+"\n", s.Date)
		f.printf(sessionTime+"\n", s.TimeRange())
	}

	if len(sessions) == 0 {
		f.println(msgNoSessions)
		return AreaBrowser, nil
	}

	answer, err := f.in.ReadLine(promptBook)
	if err != nil {
		return AreaBrowser, err
	}
	if !isYes(answer) {
		return AreaBrowser, nil
	}

	line, err := f.in.ReadLine(promptSessionNumber)
	if err != nil {
		return AreaBrowser, err
	}

	choice, err := parseChoice(line, len(sessions))
	switch {
	case errors.Is(err, errNotNumber):
		f.fail(msgInvalidEntry)
		return AreaBrowser, nil
	case err != nil:
		f.fail(msgInvalidOption)
		return AreaBrowser, nil
	}

	f.session = sessions[choice-1]
	return Confirming, nil
}

func (f *Flow) confirm(ctx context.Context) (State, error) {
	if f.user == nil {
		return MainMenu, nil
	}

	if err := f.bookings.Record(f.sessionContext(ctx), f.user.Email, f.session); err != nil {
		f.fail(msgReserveFailed)
		return AreaBrowser, nil
	}

	f.ok(msgReserved)
	return AreaBrowser, nil
}

func (f *Flow) startSession(ctx context.Context, u *users.User) {
	f.user = u
	f.sessionLog = f.logger.With("session_id", newSessionID(), "email", u.Email)
	f.sessionLog.Info(ctx, "session started")
}

func (f *Flow) endSession(ctx context.Context) {
	if f.user == nil {
		return
	}
	f.sessionLog.Info(ctx, "session closed")
	f.user, f.sessionLog = nil, nil
	f.area, f.session = "", catalog.Session{}
}

// sessionContext carries the session logger so that the stores log with the
// session attributes.
func (f *Flow) sessionContext(ctx context.Context) context.Context {
	if f.sessionLog == nil {
		return ctx
	}
	return logging.WithContext(ctx, f.sessionLog)
}

func (f *Flow) println(s string) {
	fmt.Fprintln(f.out, s)
}

func (f *Flow) printf(format string, args ...any) {
	fmt.Fprintf(f.out, format, args...)
}

func (f *Flow) ok(s string) {
	f.println(f.styles.success.Render(s))
}

func (f *Flow) fail(s string) {
	f.println(f.styles.failure.Render(s))
}

// parseChoice parses a 1-based menu choice in [1, limit].
func parseChoice(line string, limit int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errNotNumber
	}
	if n < 1 || n > limit {
		return 0, fmt.Errorf("%w: %d not in 1..%d", common.ErrInvalidMenuSelection, n, limit)
	}
	return n, nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}
