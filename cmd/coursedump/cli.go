package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/rod"
	"github.com/fwojciec/coursedump/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	DB           *sqlite.DB
	Courses      coursedump.CourseService
	Browser      *rod.Browser
	Summarizer   coursedump.Summarizer
	TokenCounter coursedump.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scrape    ScrapeCmd    `cmd:"" help:"Scrape a course from its curriculum page"`
	List      ListCmd      `cmd:"" help:"List archived courses"`
	Show      ShowCmd      `cmd:"" help:"Show an archived course's structure"`
	Export    ExportCmd    `cmd:"" help:"Export an archived course as JSON or XML"`
	Delete    DeleteCmd    `cmd:"" help:"Delete an archived course"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize an archived course with Gemini"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL        string `arg:"" help:"Curriculum page URL"`
	Output     string `short:"o" default:"." help:"Directory for the JSON result file"`
	ControlURL string `help:"Attach to a running Chrome (devtools URL) instead of launching one"`
	Headful    bool   `help:"Launch Chrome with a visible window (log in before the scrape starts)"`
	LessonGap  int    `default:"1500" help:"Pause between lessons in milliseconds"`
	KeepDupes  bool   `name:"keep-duplicate-attachments" help:"Keep attachment links repeated across lessons"`
	NoArchive  bool   `help:"Skip archiving the result in the local database"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Title string `short:"t" help:"Filter by title substring"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Course ID"`
	Full bool   `help:"Show extracted lesson text"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID     string `arg:"" help:"Course ID"`
	Format string `short:"f" default:"json" enum:"json,xml" help:"Output format (json or xml)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Course ID"`
	Force bool   `help:"Confirm deletion"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	ID string `arg:"" help:"Course ID"`
}
