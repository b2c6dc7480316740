package scrape

import (
	"context"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/bloom"
)

// State is a lesson's position in the interaction state machine:
// Pending → Locating → Loading → Extracting → Done, with Failed, TimedOut,
// and Cancelled as terminal off-ramps.
type State string

// Lesson states, reported through the diagnostic log.
const (
	StatePending    State = "pending"
	StateLocating   State = "locating"
	StateLoading    State = "loading"
	StateExtracting State = "extracting"
	StateDone       State = "done"
	StateFailed     State = "failed"
	StateTimedOut   State = "timed_out"
	StateCancelled  State = "cancelled"
)

// lessonLoop holds the per-run state the interaction loop threads through
// each lesson. It is single-writer by construction: exactly one lesson is
// being located, clicked, or extracted at any time.
type lessonLoop struct {
	page      coursedump.Page
	selectors coursedump.SelectorSet
	timing    Timing
	extractor coursedump.Extractor
	converter coursedump.Converter
	log       LogFunc

	// seenAttachments drops attachment URLs already captured by an earlier
	// lesson; the platform repeats a shared resources block per lesson.
	// Nil disables the filter.
	seenAttachments *bloom.Filter
}

// process runs one lesson through the state machine, writing either content
// or an error onto result — never both. Failures here are per-lesson
// recoverable by design: the caller always proceeds to the next lesson.
func (l *lessonLoop) process(ctx context.Context, result *coursedump.LessonResult) {
	l.transition(result, StateLocating)

	card, ok := l.locate(ctx, result.Title)
	if !ok {
		l.fail(result, StateFailed, "lesson card not found on page")
		return
	}

	if err := l.interact(ctx, card); err != nil {
		l.fail(result, StateFailed, "clicking lesson card: %s", coursedump.ErrorMessage(err))
		return
	}

	l.transition(result, StateLoading)
	if err := l.waitLoaded(ctx, result.Title); err != nil {
		if coursedump.ErrorCode(err) == coursedump.ETIMEOUT {
			l.fail(result, StateTimedOut, "lesson did not load within %s", l.timing.LoadTimeout)
		} else {
			l.fail(result, StateFailed, "waiting for lesson: %s", coursedump.ErrorMessage(err))
		}
		return
	}

	// Title matched; give asynchronous content a moment to finish rendering.
	if err := sleep(ctx, l.timing.SettleDelay); err != nil {
		l.fail(result, StateCancelled, "aborted while settling")
		return
	}

	l.transition(result, StateExtracting)
	if err := l.extract(ctx, result); err != nil {
		l.fail(result, StateFailed, "%s", coursedump.ErrorMessage(err))
		return
	}

	l.transition(result, StateDone)
}

// locate re-queries the entire current DOM for lesson cards (the page may
// have re-rendered since the plan was built) and returns the first card
// whose normalized title equals the planned title. Title equality is the
// only identification strategy; when two lessons share a normalized title
// the first DOM match serves both, a documented limitation.
func (l *lessonLoop) locate(ctx context.Context, title string) (coursedump.Node, bool) {
	root, err := l.page.Root(ctx)
	if err != nil {
		return nil, false
	}

	want := coursedump.NormalizeTitle(title)
	for _, card := range l.selectors.FindAll(root, coursedump.RoleLessonCard) {
		if coursedump.NormalizeTitle(l.cardTitle(card)) == want {
			return card, true
		}
	}
	return nil, false
}

// cardTitle reads a card's display title, falling back to the card's own
// text when no title element resolves.
func (l *lessonLoop) cardTitle(card coursedump.Node) string {
	if titleNode, ok := l.selectors.FindOne(card, coursedump.RoleLessonTitle); ok {
		if text, err := titleNode.Text(); err == nil {
			return text
		}
	}
	text, err := card.Text()
	if err != nil {
		return ""
	}
	return text
}

// interact resolves the most specific clickable element inside the card
// (falling back to the card itself), scrolls it into view, yields briefly
// for layout, and dispatches the full pointer sequence.
func (l *lessonLoop) interact(ctx context.Context, card coursedump.Node) error {
	target := card
	if inner, ok := l.selectors.FindOne(card, coursedump.RoleLessonClick); ok {
		target = inner
	}

	clickable, ok := target.(coursedump.Clickable)
	if !ok {
		// The inner target may be a live wrapper the card is not; try the
		// card before giving up.
		if clickable, ok = card.(coursedump.Clickable); !ok {
			return coursedump.Errorf(coursedump.EINTERNAL, "element is not interactive")
		}
	}

	if err := clickable.ScrollIntoView(ctx); err != nil {
		return coursedump.Errorf(coursedump.EINTERNAL, "scrolling into view: %v", err)
	}
	if err := sleep(ctx, l.timing.ClickSettle); err != nil {
		return err
	}
	return clickable.Click(ctx)
}

// waitLoaded polls the detail panel title until its normalized text exactly
// equals the lesson's normalized title. Substring matches do not count: the
// previous lesson's panel is still visible while the new one loads, and a
// contains-check would confirm against it.
func (l *lessonLoop) waitLoaded(ctx context.Context, title string) error {
	want := coursedump.NormalizeTitle(title)

	return Poll(ctx, l.timing.PollInterval, l.timing.LoadTimeout, func(ctx context.Context) (bool, error) {
		root, err := l.page.Root(ctx)
		if err != nil {
			// The page can be mid-render; keep polling.
			return false, nil
		}
		titleNode, ok := l.selectors.FindOne(root, coursedump.RoleDetailTitle)
		if !ok {
			return false, nil
		}
		text, err := titleNode.Text()
		if err != nil {
			return false, nil
		}
		return coursedump.NormalizeTitle(text) == want, nil
	})
}

// extract captures the lesson's content by detected type. Unknown lessons
// attempt every extractor in turn; quiz content is out of scope and skipped
// without recording an error.
func (l *lessonLoop) extract(ctx context.Context, result *coursedump.LessonResult) error {
	root, err := l.page.Root(ctx)
	if err != nil {
		return coursedump.Errorf(coursedump.EUNAVAILABLE, "reading page: %v", err)
	}

	switch result.Type {
	case coursedump.LessonText:
		return l.extractText(ctx, root, result)
	case coursedump.LessonVideo:
		return l.extractVideo(root, result)
	case coursedump.LessonDownload:
		return l.extractDownloads(root, result, true)
	case coursedump.LessonQuiz:
		l.log("lesson %q: quiz content skipped", result.Title)
		return nil
	default:
		if err := l.extractText(ctx, root, result); err == nil {
			return nil
		}
		if err := l.extractVideo(root, result); err == nil {
			return nil
		}
		return l.extractDownloads(root, result, false)
	}
}

// extractText captures the rich-text editor's markup and text. The editor
// may be an inline element or a frame whose document requires separate
// same-origin access; a denied frame is a recoverable extraction error, not
// a thrown condition.
func (l *lessonLoop) extractText(ctx context.Context, root coursedump.Node, result *coursedump.LessonResult) error {
	editor, ok := l.selectors.FindOne(root, coursedump.RoleTextEditor)
	if !ok {
		frame, found := l.selectors.FindOne(root, coursedump.RoleEditorFrame)
		if !found {
			return coursedump.Errorf(coursedump.ENOTFOUND, "text content container not found")
		}
		host, isHost := frame.(coursedump.FrameHost)
		if !isHost {
			return coursedump.Errorf(coursedump.EACCESS, "editor frame document not accessible")
		}
		frameRoot, err := host.FrameRoot(ctx)
		if err != nil {
			return coursedump.Errorf(coursedump.EACCESS, "editor frame document not accessible: %v", coursedump.ErrorMessage(err))
		}
		editor = frameRoot
	}

	markup, err := editor.HTML()
	if err != nil {
		return coursedump.Errorf(coursedump.EINTERNAL, "reading editor markup: %v", err)
	}
	text, err := editor.Text()
	if err != nil {
		return coursedump.Errorf(coursedump.EINTERNAL, "reading editor text: %v", err)
	}

	plain := coursedump.CollapseSpace(text)
	if l.extractor != nil {
		if extracted, err := l.extractor.Extract(markup); err == nil && extracted.ContentText != "" {
			plain = extracted.ContentText
		}
	}

	result.ContentHTML = &markup
	result.TextContent = &text
	result.PlainText = &plain
	result.ContentHash = coursedump.ContentHash(markup)

	if l.converter != nil {
		if markdown, err := l.converter.Convert(markup); err == nil {
			result.Markdown = markdown
		} else {
			l.log("lesson %q: markdown conversion failed: %v", result.Title, err)
		}
	}

	return nil
}

// videoSrcAttrs are attributes checked, in order, for the player's source.
var videoSrcAttrs = []string{"src", "data-src", "data-video-src", "data-url"}

// extractVideo captures the player's source URL and poster. Only metadata is
// recorded; the media itself is never fetched.
func (l *lessonLoop) extractVideo(root coursedump.Node, result *coursedump.LessonResult) error {
	player, ok := l.selectors.FindOne(root, coursedump.RoleVideoPlayer)
	if !ok {
		return coursedump.Errorf(coursedump.ENOTFOUND, "video player not found")
	}

	src := ""
	for _, attr := range videoSrcAttrs {
		if v, ok := player.Attr(attr); ok && v != "" {
			src = v
			break
		}
	}
	if src == "" {
		return coursedump.Errorf(coursedump.ENOTFOUND, "video source not found")
	}

	meta := coursedump.NewVideoMeta(src)
	if poster, ok := player.Attr("poster"); ok {
		meta.Poster = poster
	}
	result.Video = meta
	result.ContentHash = coursedump.ContentHash(src)
	return nil
}

// extractDownloads captures download links from the detail panel. When
// required is false (unknown-type fallback) an empty panel is not an error.
func (l *lessonLoop) extractDownloads(root coursedump.Node, result *coursedump.LessonResult, required bool) error {
	links := l.selectors.FindAll(root, coursedump.RoleDownloadLink)
	if len(links) == 0 && required {
		return coursedump.Errorf(coursedump.ENOTFOUND, "no download links found")
	}

	var attachments []coursedump.Attachment
	for _, link := range links {
		href, ok := link.Attr("href")
		if !ok || href == "" {
			continue
		}

		name := coursedump.FilenameFromURL(href)
		if v, ok := link.Attr("download"); ok && v != "" {
			name = v
		}

		label := ""
		if text, err := link.Text(); err == nil {
			label = coursedump.CollapseSpace(text)
		}

		attachments = append(attachments, coursedump.Attachment{
			URL:       href,
			Filename:  name,
			Extension: coursedump.ExtensionFromURL(href),
			Label:     label,
		})
	}

	attachments = coursedump.DedupeAttachments(attachments)

	if l.seenAttachments != nil {
		kept := attachments[:0]
		for _, a := range attachments {
			if l.seenAttachments.Test(a.URL) {
				l.log("lesson %q: skipping repeated attachment %s", result.Title, a.URL)
				continue
			}
			l.seenAttachments.Add(a.URL)
			kept = append(kept, a)
		}
		attachments = kept
	}

	// Repeats filtered down to nothing is not an error: the links were there.
	result.Attachments = attachments
	return nil
}

func (l *lessonLoop) transition(result *coursedump.LessonResult, state State) {
	l.log("lesson %q [%d.%d]: %s", result.Title, result.ChapterIndex, result.LessonIndex, state)
}

// fail records the terminal state and error message on the lesson. Content
// fields stay nil: at most one of {content, error} is ever set.
func (l *lessonLoop) fail(result *coursedump.LessonResult, state State, format string, args ...any) {
	err := coursedump.Errorf(coursedump.EINTERNAL, format, args...)
	result.Error = err.Message
	l.log("lesson %q [%d.%d]: %s: %s", result.Title, result.ChapterIndex, result.LessonIndex, state, err.Message)
}
