// lexctl is a command-line front end for the LexMentor backend: log in,
// inspect cases and clients, talk to the legal mentor, and move documents,
// all over the same SDK a richer frontend would use.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lexmentor/lexclient/pkg/api"
	"github.com/lexmentor/lexclient/pkg/config"
	"github.com/lexmentor/lexclient/pkg/logging"
	"github.com/lexmentor/lexclient/pkg/model"
	"github.com/lexmentor/lexclient/pkg/session"
	"github.com/lexmentor/lexclient/pkg/storage"
	"github.com/lexmentor/lexclient/pkg/validate"
	"github.com/lexmentor/lexclient/pkg/version"
)

const usage = `Usage: lexctl [flags] <command> [args]

Commands:
  login <email>              Authenticate and persist the session
  logout                     Clear the persisted session
  whoami                     Show the authenticated user
  register <name> <email>    Create an account
  cases                      List cases
  clients                    List clients
  chat <question>            Ask the legal mentor
  upload <file>              Upload a document
  download <id> <dest>       Download a document
  version                    Print version information

Flags:
`

// printNavigator surfaces the destination the web frontend would route to.
type printNavigator struct{}

func (printNavigator) Navigate(path string) {
	fmt.Println("-> " + path)
}

func main() {
	configPath := flag.String("config", "", "Config file path (default: lexclient.yaml next to the binary)")
	apiURL := flag.String("api", "", "Backend base URL (overrides config)")
	accountType := flag.String("type", "lawyer", "Account type for register: lawyer, client or admin")
	title := flag.String("title", "", "Title for upload (defaults to the file name)")
	remember := flag.Bool("remember", false, "Set the remember-me flag on login")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *apiURL != "" {
		cfg.APIBaseURL = *apiURL
	}
	if err := logging.Setup(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "invalid logging config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.StatePath)
	if err != nil {
		slog.Error("open state store", "path", cfg.StatePath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	client := api.New(cfg.APIBaseURL, session.StoreTokenSource{Store: store}, nil)
	mgr := session.NewManager(client, store, printNavigator{})

	ctx := context.Background()
	if err := mgr.Initialize(ctx); err != nil {
		slog.Error("restore session", "err", err)
		os.Exit(1)
	}

	if err := run(ctx, flag.Args(), client, mgr, *accountType, *title, *remember); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, client *api.Client, mgr *session.Manager, accountType, title string, remember bool) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return cmdLogin(ctx, mgr, rest, remember)
	case "logout":
		mgr.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return cmdWhoami(mgr)
	case "register":
		return cmdRegister(ctx, mgr, rest, accountType)
	case "cases":
		return cmdCases(ctx, client)
	case "clients":
		return cmdClients(ctx, client)
	case "chat":
		return cmdChat(ctx, client, rest)
	case "upload":
		return cmdUpload(ctx, client, rest, title)
	case "download":
		return cmdDownload(ctx, client, rest)
	case "version":
		fmt.Println("lexctl " + version.Full())
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdLogin(ctx context.Context, mgr *session.Manager, args []string, remember bool) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: lexctl login <email>")
	}
	password, err := promptPassword()
	if err != nil {
		return err
	}
	if errs := validate.Form(
		map[string]string{"email": args[0], "password": password},
		validate.Rules{"email": validate.EmailRule, "password": validate.PasswordRule},
	); len(errs) > 0 {
		return formError(errs)
	}
	result := mgr.Login(ctx, args[0], password, remember)
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Error)
	}
	user := mgr.CurrentUser()
	fmt.Printf("logged in as %s (%s)\n", user.Name, user.AccountType)
	return nil
}

func formError(errs validate.Errors) error {
	lines := make([]string, 0, len(errs))
	for field, msg := range errs {
		lines = append(lines, field+": "+msg)
	}
	sort.Strings(lines)
	return fmt.Errorf("invalid input:\n  %s", strings.Join(lines, "\n  "))
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func cmdWhoami(mgr *session.Manager) error {
	user := mgr.CurrentUser()
	if user == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s <%s> (%s, id %s)\n", user.Name, user.Email, user.AccountType, user.ID)
	return nil
}

func cmdRegister(ctx context.Context, mgr *session.Manager, args []string, accountType string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: lexctl register <name> <email>")
	}
	password, err := promptPassword()
	if err != nil {
		return err
	}
	if errs := validate.Form(
		map[string]string{"name": args[0], "email": args[1], "password": password},
		validate.Rules{
			"name":     {Required: true, MinLength: 2},
			"email":    validate.EmailRule,
			"password": validate.PasswordRule,
		},
	); len(errs) > 0 {
		return formError(errs)
	}
	result := mgr.Register(ctx, model.RegisterData{
		Name:        args[0],
		Email:       args[1],
		Password:    password,
		AccountType: model.ParseAccountType(accountType),
	})
	if !result.Success {
		return fmt.Errorf("registration failed: %s", result.Error)
	}
	fmt.Println("account created")
	return nil
}

func cmdCases(ctx context.Context, client *api.Client) error {
	cases, err := client.GetAllCases(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCLIENT\tCOURT\tSTATUS\tPRIORITY")
	for _, c := range cases {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.CaseID, c.Title, c.Client.Name, c.Court, c.Status, c.Priority)
	}
	return w.Flush()
}

func cmdClients(ctx context.Context, client *api.Client) error {
	clients, err := client.GetClients(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCASES\tBILLED")
	for _, c := range clients {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\n",
			c.ClientID, c.Name, c.Email, c.CasesCount, c.TotalBilled)
	}
	return w.Flush()
}

func cmdChat(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: lexctl chat <question>")
	}
	question := strings.Join(args, " ")

	sessions, err := client.GetChatSessions(ctx)
	if err != nil {
		return err
	}
	var sessionID string
	if len(sessions) > 0 {
		sessionID = sessions[0].ID
	} else {
		created, err := client.CreateChatSession(ctx, "", "")
		if err != nil {
			return err
		}
		sessionID = created.ID
		for _, msg := range created.Messages {
			fmt.Println("mentor: " + msg.Text)
		}
	}

	reply, err := client.SendMessage(ctx, sessionID, question)
	if err != nil {
		return err
	}
	fmt.Println("mentor: " + reply.Text)
	return nil
}

func cmdUpload(ctx context.Context, client *api.Client, args []string, title string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: lexctl upload <file>")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if title == "" {
		title = filepath.Base(args[0])
	}
	doc, err := client.UploadDocument(ctx, model.DocumentUpload{
		File:     f,
		FileName: filepath.Base(args[0]),
		Title:    title,
	})
	if err != nil {
		return err
	}
	fmt.Printf("uploaded document %d (%s, %d bytes)\n", doc.DocumentID, doc.Title, doc.FileSize)
	return nil
}

func cmdDownload(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: lexctl download <id> <dest>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid document id %q", args[0])
	}
	raw, err := client.DownloadDocument(ctx, id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[1], raw, 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %d bytes to %s\n", len(raw), args[1])
	return nil
}
