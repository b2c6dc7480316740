// Package scrape implements the course scraping engine: a one-pass course
// map builder followed by a strictly sequential click-through loop over the
// planned lessons. The loop drives shared, single-instance page state (the
// one visible detail panel), so there is deliberately no parallel fan-out
// across lessons.
package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/bloom"
)

// Default interaction timing.
const (
	DefaultLoadTimeout  = 12 * time.Second
	DefaultPollInterval = 400 * time.Millisecond
	DefaultSettleDelay  = 800 * time.Millisecond
	DefaultClickSettle  = 250 * time.Millisecond
	DefaultLessonGap    = 1500 * time.Millisecond
)

// attachmentFilterSize sizes the cross-lesson attachment dedup filter.
const attachmentFilterSize = 8192

// Timing tunes the interaction loop's waits. Zero fields take defaults.
type Timing struct {
	// LoadTimeout bounds the wait for the detail panel to reflect the
	// clicked lesson.
	LoadTimeout time.Duration

	// PollInterval is the load-confirmation polling frequency.
	PollInterval time.Duration

	// SettleDelay is the extra wait after the detail title matches, letting
	// asynchronous content finish rendering.
	SettleDelay time.Duration

	// ClickSettle is the wait between scrolling a card into view and
	// dispatching the pointer sequence, letting layout settle.
	ClickSettle time.Duration
}

func (t Timing) withDefaults() Timing {
	if t.LoadTimeout <= 0 {
		t.LoadTimeout = DefaultLoadTimeout
	}
	if t.PollInterval <= 0 {
		t.PollInterval = DefaultPollInterval
	}
	if t.SettleDelay <= 0 {
		t.SettleDelay = DefaultSettleDelay
	}
	if t.ClickSettle <= 0 {
		t.ClickSettle = DefaultClickSettle
	}
	return t
}

// Scraper drives one scraping run against a live curriculum page.
//
// Page and Selectors are required. Stop carries the cooperative cancellation
// flag set asynchronously by the collaborator; it is observed only at lesson
// boundaries, never mid-lesson. Progress events are fire-and-forget.
type Scraper struct {
	Page      coursedump.Page
	Selectors coursedump.SelectorSet

	// Stop is checked at the top of each per-lesson iteration. Optional.
	Stop coursedump.Stopper

	// Progress receives init/progress/done/cancelled events. Optional.
	Progress coursedump.ProgressFunc

	// Extractor normalizes extracted lesson markup to plain text. Optional;
	// without it the loop falls back to whitespace-collapsed browser text.
	Extractor coursedump.Extractor

	// Converter renders extracted lesson markup as Markdown. Optional.
	Converter coursedump.Converter

	// Pacer spaces lessons out. Optional.
	Pacer *Pacer

	Timing Timing

	// Log receives diagnostic messages, including per-lesson state
	// transitions. Optional.
	Log LogFunc

	// KeepDuplicateAttachments disables the cross-lesson attachment dedup
	// filter. The platform repeats a shared resources block on every
	// lesson's detail panel, so dedup is on by default.
	KeepDuplicateAttachments bool
}

// Run builds the course plan from the current page and processes every
// planned lesson in order. It returns the result document, with Cancelled
// set when the run was stopped early; per-lesson failures are recorded on
// the lessons and never abort the run. The only fatal condition is a page
// with no resolvable chapters, returned as ENOTFOUND.
func (s *Scraper) Run(ctx context.Context) (*coursedump.ResultDocument, error) {
	selectors := s.Selectors
	if selectors == nil {
		selectors = coursedump.DefaultSelectors()
	}
	timing := s.Timing.withDefaults()

	root, err := s.Page.Root(ctx)
	if err != nil {
		return nil, coursedump.Errorf(coursedump.EUNAVAILABLE, "reading page: %v", err)
	}

	plan, err := BuildPlan(root, selectors)
	if err != nil {
		return nil, err
	}

	doc := newDocument(plan)
	if doc.CourseTitle == "" {
		if title, err := s.Page.Title(ctx); err == nil {
			doc.CourseTitle = coursedump.CollapseSpace(title)
		}
	}
	if url, err := s.Page.URL(ctx); err == nil {
		doc.CurriculumURL = url
	}

	loop := &lessonLoop{
		page:      s.Page,
		selectors: selectors,
		timing:    timing,
		extractor: s.Extractor,
		converter: s.Converter,
		log:       s.logf,
	}
	if !s.KeepDuplicateAttachments {
		loop.seenAttachments = bloom.NewFilter(attachmentFilterSize, 0.001)
	}

	total := plan.TotalLessons()
	s.emit(coursedump.ProgressEvent{Phase: coursedump.PhaseInit, Total: total})

	completed := 0
	for _, chapter := range doc.Chapters {
		for _, lesson := range chapter.Lessons {
			// Cancellation is advisory and checkpointed: this is the only
			// place it is observed.
			if s.Stop != nil && s.Stop.Stopped() {
				doc.Cancelled = true
				s.logf("run cancelled after %d/%d lessons", completed, total)
				s.emit(coursedump.ProgressEvent{Phase: coursedump.PhaseCancelled, Completed: completed, Total: total})
				return doc, nil
			}

			loop.process(ctx, lesson)
			completed++

			s.emit(coursedump.ProgressEvent{
				Phase:       coursedump.PhaseProgress,
				Completed:   completed,
				Total:       total,
				LessonTitle: lesson.Title,
			})

			if err := s.Pacer.Wait(ctx); err != nil {
				// Hard context abort mid-run: report what we have.
				doc.Cancelled = true
				s.emit(coursedump.ProgressEvent{Phase: coursedump.PhaseCancelled, Completed: completed, Total: total})
				return doc, nil
			}
		}
	}

	s.emit(coursedump.ProgressEvent{Phase: coursedump.PhaseDone, Completed: completed, Total: total})
	return doc, nil
}

// newDocument builds the result skeleton from the plan. Totals reflect the
// plan, regardless of how many lessons end up processed.
func newDocument(plan *coursedump.CoursePlan) *coursedump.ResultDocument {
	doc := &coursedump.ResultDocument{
		CourseTitle:   plan.CourseTitle,
		ExtractedAt:   time.Now().UTC(),
		TotalChapters: len(plan.Chapters),
		TotalLessons:  plan.TotalLessons(),
	}
	for _, ch := range plan.Chapters {
		chapter := &coursedump.ChapterResult{
			ChapterTitle: ch.Title,
			ChapterIndex: ch.Index,
		}
		for _, l := range ch.Lessons {
			chapter.Lessons = append(chapter.Lessons, &coursedump.LessonResult{
				Title:        l.Title,
				Type:         l.Type,
				ChapterIndex: l.ChapterIndex,
				LessonIndex:  l.LessonIndex,
			})
		}
		doc.Chapters = append(doc.Chapters, chapter)
	}
	return doc
}

func (s *Scraper) emit(ev coursedump.ProgressEvent) {
	if s.Progress != nil {
		s.Progress(ev)
	}
}

func (s *Scraper) logf(format string, args ...any) {
	if s.Log != nil {
		s.Log(format, args...)
	}
}
