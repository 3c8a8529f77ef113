package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/views"
	"movie-catalog/pkg/client"

	"go.uber.org/zap"
)

func main() {
	apiURL := flag.String("api", envOr("MOVIE_API_URL", "http://localhost:8080"), "base URL of the API")
	tok := flag.String("token", os.Getenv("MOVIE_TOKEN"), "bearer token (default $MOVIE_TOKEN)")
	verbose := flag.Bool("v", false, "log requests to stderr")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	logger := zap.NewNop()
	if *verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	auth := &views.AuthState{}
	app := &cli{
		api:    client.New(*apiURL, client.WithTokenSource(func() string { return firstNonEmpty(auth.Token(), *tok) })),
		auth:   auth,
		log:    logger,
		toasts: views.ToasterFunc(printToast),
	}

	if err := app.run(ctx, args[0], args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

type cli struct {
	api    *client.Client
	auth   *views.AuthState
	log    *zap.Logger
	toasts views.Toaster
}

func (c *cli) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		fs := flag.NewFlagSet("signup", flag.ExitOnError)
		first := fs.String("first", "", "first name")
		last := fs.String("last", "", "last name")
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password")
		fs.Parse(args)

		page := views.NewSignup(c.api, c.auth, c.toasts, navigator{}, c.log)
		if err := page.Submit(ctx, request.SignupRequest{FirstName: *first, LastName: *last, Email: *email, Password: *password}); err != nil {
			return err
		}
		fmt.Println(c.auth.Token())
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password")
		fs.Parse(args)

		resp, err := c.api.Login(ctx, request.LoginRequest{Email: *email, Password: *password})
		if err != nil {
			return err
		}
		fmt.Println(resp.Data.Token)
		return nil

	case "whoami", "user":
		var id string
		if len(args) > 0 {
			id = args[0]
		}
		resp, err := c.api.GetUser(ctx, id)
		if err != nil {
			return err
		}
		u := resp.Data
		fmt.Printf("%s %s <%s> %s\n", u.FirstName, u.LastName, u.Email, u.ID)
		return nil

	case "movies":
		fs := flag.NewFlagSet("movies", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		perPage := fs.Int("per-page", request.DefaultPerPage, "movies per page")
		fs.Parse(args)

		resp, err := c.api.ListMovies(ctx, *page, *perPage)
		if err != nil {
			return err
		}
		for _, m := range resp.Data.Data {
			fmt.Printf("%s  %-30s %d  %d reviews\n", m.ID, m.Title, m.ReleaseYear, m.ReviewCount)
		}
		p := resp.Data.Pagination
		fmt.Printf("page %d of %d (%d movies)\n", p.Page, p.TotalPages, p.Total)
		return nil

	case "search":
		if len(args) == 0 {
			usage()
			return errUsage
		}
		page := views.NewSearch(c.api, c.toasts, c.log)
		if err := page.SetQuery(ctx, strings.Join(args, " ")); err != nil {
			return err
		}
		return page.Render(os.Stdout)

	case "movie":
		if len(args) != 1 {
			usage()
			return errUsage
		}
		page := views.NewMovieDetails(c.api, c.auth, c.toasts, c.log, args[0])
		if err := page.Load(ctx); err != nil {
			return err
		}
		return page.Render(os.Stdout)

	case "review":
		return c.review(ctx, args)

	default:
		usage()
		return errUsage
	}
}

func (c *cli) review(ctx context.Context, args []string) error {
	if len(args) < 2 {
		usage()
		return errUsage
	}
	action, movieID := args[0], args[1]

	fs := flag.NewFlagSet("review "+action, flag.ExitOnError)
	comment := fs.String("comment", "", "review text")
	rating := fs.Int("rating", 0, "rating from 1 to 5")
	fs.Parse(args[2:])

	req := request.ReviewRequest{MovieID: movieID, Comment: *comment, Rating: *rating}

	switch action {
	case "add":
		resp, err := c.api.AddReview(ctx, req)
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
	case "edit":
		resp, err := c.api.EditReview(ctx, req)
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
	case "delete":
		resp, err := c.api.DeleteReview(ctx, movieID)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d)\n", resp.Message, resp.Data.Count)
	default:
		usage()
		return errUsage
	}
	return nil
}

type navigator struct{}

func (navigator) Navigate(string) {}

func printToast(t views.Toast) {
	if t.Variant == views.VariantDestructive {
		fmt.Fprintf(os.Stderr, "%s: %s\n", t.Title, t.Description)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: moviecli [-api URL] [-token TOKEN] [-v] <command> [args]

Commands:
  signup -first F -last L -email E -password P   Create an account, print its token
  login -email E -password P                     Print a token
  whoami [userId]                                Show the token's user, or another user
  movies [-page N] [-per-page N]                 List movies by popularity
  search <query>                                 Search titles
  movie <id>                                     Show a movie with rank and reviews
  review add|edit <movieId> -comment C -rating R
  review delete <movieId>

MOVIE_API_URL and MOVIE_TOKEN set the defaults for -api and -token.`)
}
