package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-customer-service/internal/adapter"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/models"
)

const usage = `usage: client <command> [flags]

commands:
  register -name -email -age -gender -password
  login    [-username -password] [-copy]   interactive without flags
  list
  get      -id
  update   -id [-name] [-email] [-age] [-gender]
  delete   -id
  version
  health
  browse                                   interactive customer browser

authenticated commands read the token from -token or ADAPTER_TOKEN`

type command func(ctx context.Context, args []string) error

type App struct {
	adapter adapter.CustomerAdapter
	ui      UI
	out     io.Writer

	// copyText writes to the system clipboard; replaced in tests.
	copyText func(string) error

	commands map[string]command

	logger *logger.Logger
}

// NewApp builds the client. token, when set, is attached to every
// authenticated request.
func NewApp(a adapter.CustomerAdapter, ui UI, token string, out io.Writer, logger *logger.Logger) *App {
	if token != "" {
		a.SetToken(token)
	}

	app := &App{
		adapter:  a,
		ui:       ui,
		out:      out,
		copyText: clipboard.WriteAll,
		logger:   logger,
	}
	app.commands = map[string]command{
		"register": app.register,
		"login":    app.login,
		"list":     app.list,
		"get":      app.get,
		"update":   app.update,
		"delete":   app.delete,
		"version":  app.version,
		"health":   app.health,
		"browse":   app.browse,
	}
	return app
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		_, err := fmt.Fprintln(a.out, usage)
		return err
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], usage)
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd(ctx, args[1:])
}

// newFlagSet returns a flag set that reports errors instead of exiting.
// Every set accepts -token.
func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.Func("token", "bearer token", func(s string) error {
		a.adapter.SetToken(s)
		return nil
	})
	return fs
}

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegistrationRequest
	var gender string

	fs := a.newFlagSet("register")
	fs.StringVar(&req.Name, "name", "", "customer name")
	fs.StringVar(&req.Email, "email", "", "customer email, used as username")
	fs.IntVar(&req.Age, "age", 0, "customer age")
	fs.StringVar(&gender, "gender", "", "MALE or FEMALE")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req.Gender = models.Gender(strings.ToUpper(gender))

	token, err := a.adapter.Register(ctx, req)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, token)
	return err
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	var copyToken bool

	fs := a.newFlagSet("login")
	fs.StringVar(&req.Username, "username", "", "customer email")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.BoolVar(&copyToken, "copy", false, "copy the access token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		resp    models.AuthResponse
		refresh string
		err     error
	)
	if req.Username == "" && req.Password == "" {
		resp, err = a.ui.LoginFlow(ctx)
	} else {
		resp, refresh, err = a.adapter.Login(ctx, req)
	}
	if err != nil {
		return err
	}

	if copyToken {
		if err = a.copyText(resp.Token); err != nil {
			return fmt.Errorf("copy token to clipboard: %w", err)
		}
	}

	return a.printJSON(struct {
		models.AuthResponse
		RefreshToken string `json:"refresh_token,omitempty"`
	}{resp, refresh})
}

func (a *App) list(ctx context.Context, args []string) error {
	if err := a.newFlagSet("list").Parse(args); err != nil {
		return err
	}

	customers, err := a.adapter.ListCustomers(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(customers)
}

func (a *App) get(ctx context.Context, args []string) error {
	fs := a.newFlagSet("get")
	id := fs.Int64("id", 0, "customer id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return ErrMissingID
	}

	customer, err := a.adapter.GetCustomer(ctx, *id)
	if err != nil {
		return err
	}
	return a.printJSON(customer)
}

// update sends only the flags given on the command line.
func (a *App) update(ctx context.Context, args []string) error {
	var (
		id     int64
		name   string
		email  string
		age    int
		gender string
	)

	fs := a.newFlagSet("update")
	fs.Int64Var(&id, "id", 0, "customer id")
	fs.StringVar(&name, "name", "", "new name")
	fs.StringVar(&email, "email", "", "new email")
	fs.IntVar(&age, "age", 0, "new age")
	fs.StringVar(&gender, "gender", "", "new gender, MALE or FEMALE")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id <= 0 {
		return ErrMissingID
	}

	var req models.UpdateRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			req.Name = &name
		case "email":
			req.Email = &email
		case "age":
			req.Age = &age
		case "gender":
			g := models.Gender(strings.ToUpper(gender))
			req.Gender = &g
		}
	})
	if req.Empty() {
		return ErrNothingToDo
	}

	if err := a.adapter.UpdateCustomer(ctx, id, req); err != nil {
		return err
	}

	_, err := fmt.Fprintf(a.out, "customer %d updated\n", id)
	return err
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := a.newFlagSet("delete")
	id := fs.Int64("id", 0, "customer id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return ErrMissingID
	}

	if err := a.adapter.DeleteCustomer(ctx, *id); err != nil {
		return err
	}

	_, err := fmt.Fprintf(a.out, "customer %d deleted\n", *id)
	return err
}

func (a *App) version(ctx context.Context, _ []string) error {
	info, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(info)
}

func (a *App) health(ctx context.Context, _ []string) error {
	if err := a.adapter.Health(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, "UP")
	return err
}

// browse asks for credentials first when no token is configured.
func (a *App) browse(ctx context.Context, args []string) error {
	if err := a.newFlagSet("browse").Parse(args); err != nil {
		return err
	}

	if a.adapter.Token() == "" {
		if _, err := a.ui.LoginFlow(ctx); err != nil {
			return err
		}
	}

	err := a.ui.Browse(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
