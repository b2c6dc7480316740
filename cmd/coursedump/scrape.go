package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/fs"
	"github.com/fwojciec/coursedump/htmltomarkdown"
	"github.com/fwojciec/coursedump/readability"
	"github.com/fwojciec/coursedump/scrape"
	cdslog "github.com/fwojciec/coursedump/slog"
	"github.com/fwojciec/coursedump/trafilatura"
	"golang.org/x/sync/errgroup"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithCancel(deps.Ctx)
	defer cancel()

	fmt.Fprintf(deps.Stdout, "Opening %s\n", c.URL)

	page, err := deps.Browser.OpenPage(ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursedump.ErrorMessage(err))
		return err
	}
	defer page.Close()

	var stop coursedump.StopFlag

	// First interrupt stops cooperatively at the next lesson boundary; a
	// second one aborts the run outright.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	progress := cdslog.NewLoggingProgress(func(ev coursedump.ProgressEvent) {
		switch ev.Phase {
		case coursedump.PhaseInit:
			fmt.Fprintf(deps.Stdout, "Found %d lessons\n", ev.Total)
		case coursedump.PhaseProgress:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", ev.Completed, ev.Total, ev.LessonTitle)
		case coursedump.PhaseCancelled:
			fmt.Fprintf(deps.Stdout, "Stopped after %d/%d lessons\n", ev.Completed, ev.Total)
		}
	}, deps.Logger)

	scraper := &scrape.Scraper{
		Page:      cdslog.NewLoggingPage(page, deps.Logger),
		Selectors: coursedump.DefaultSelectors(),
		Stop:      &stop,
		Progress:  progress,
		Extractor: coursedump.ExtractorChain{
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
		},
		Converter:                htmltomarkdown.NewConverter(),
		Pacer:                    scrape.NewPacer(time.Duration(c.LessonGap) * time.Millisecond),
		Log:                      func(format string, args ...any) { deps.Logger.Debug(fmt.Sprintf(format, args...)) },
		KeepDuplicateAttachments: c.KeepDupes,
	}

	var doc *coursedump.ResultDocument

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		first := true
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-sigCh:
				if first {
					first = false
					fmt.Fprintln(deps.Stderr, "interrupt: stopping after the current lesson (interrupt again to abort)")
					stop.Stop()
					continue
				}
				fmt.Fprintln(deps.Stderr, "interrupt: aborting")
				cancel()
				return nil
			}
		}
	})
	g.Go(func() error {
		defer cancel() // releases the signal watcher
		var runErr error
		doc, runErr = scraper.Run(gctx)
		return runErr
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursedump.ErrorMessage(err))
		return err
	}

	path, err := fs.NewWriter(c.Output).WriteDocument(deps.Ctx, doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error writing result: %s\n", coursedump.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)

	if !c.NoArchive {
		if err := deps.Courses.CreateCourse(deps.Ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error archiving course: %s\n", coursedump.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Archived as %s\n", doc.ID)
	}

	completed := doc.CompletedCount()
	failed := 0
	for _, l := range doc.Lessons() {
		if l.Error != "" {
			failed++
		}
	}
	fmt.Fprintf(deps.Stdout, "Done: %d/%d lessons captured", completed, doc.TotalLessons)
	if failed > 0 {
		fmt.Fprintf(deps.Stdout, ", %d failed", failed)
	}
	if doc.Cancelled {
		fmt.Fprint(deps.Stdout, " (cancelled)")
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}
