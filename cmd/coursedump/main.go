// Command coursedump scrapes course content from an e-learning platform's
// curriculum editor and archives it locally for inspection, export, and
// summarization.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/gemini"
	"github.com/fwojciec/coursedump/rod"
	"github.com/fwojciec/coursedump/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// CourseService for end-to-end testing.
	CourseService coursedump.CourseService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coursedump"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'coursedump --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set COURSEDUMP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CourseService = sqlite.NewCourseService(m.DB)
	deps.DB = m.DB
	deps.Courses = m.CourseService

	if cmd == "scrape" {
		browser, err := openBrowser(cli.Scrape)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --control-url to attach to a running one")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Close()
		deps.Browser = browser
	}

	if cmd == "summarize" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Summarizer = gemini.NewSummarizer(client, m.CourseService)

		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.TokenCounter = tokenCounter
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for pre-flight token counting before summarization.
const tokenizerModel = "gemini-2.5-flash"

func openBrowser(c ScrapeCmd) (*rod.Browser, error) {
	if c.ControlURL != "" {
		return rod.ConnectBrowser(c.ControlURL)
	}
	return rod.NewBrowser(rod.WithHeadless(!c.Headful))
}

func defaultDBPath() string {
	if path := os.Getenv("COURSEDUMP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "coursedump.db"
	}
	dir := filepath.Join(home, ".coursedump")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "coursedump.db")
}
