package coursedump

import (
	"context"
	"time"
)

// LessonResult extends a LessonPlan with the content captured by the
// interaction loop. Each result is written exactly once, when the lesson's
// turn arrives, and never revisited. At most one of {content, error} is set:
// a lesson that fails carries Error and nil content pointers; a lesson that
// succeeds carries content and an empty Error. A lesson the loop never
// reached (cancellation) carries neither.
type LessonResult struct {
	Title        string     `json:"title"`
	Type         LessonType `json:"type"`
	ChapterIndex int        `json:"chapterIndex"`
	LessonIndex  int        `json:"lessonIndex"`

	// ContentHTML is the raw markup of the lesson's content container.
	ContentHTML *string `json:"content"`

	// TextContent is the container's rendered text, as the browser reports it.
	TextContent *string `json:"textContent"`

	// PlainText is the normalized plain-text rendition of the content.
	PlainText *string `json:"plainTextContent"`

	// Markdown is a portable Markdown rendition of ContentHTML, when a
	// converter is configured.
	Markdown string `json:"markdown,omitempty"`

	// ContentHash fingerprints ContentHTML for change detection.
	ContentHash string `json:"contentHash,omitempty"`

	Video       *VideoMeta   `json:"video,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`

	Error string `json:"error,omitempty"`
}

// Processed reports whether the interaction loop reached this lesson at all.
func (r *LessonResult) Processed() bool {
	return r.Error != "" || r.ContentHTML != nil || r.Video != nil || len(r.Attachments) > 0
}

// ChapterResult mirrors a ChapterPlan with lessons replaced by results.
type ChapterResult struct {
	ChapterTitle string          `json:"chapterTitle"`
	ChapterIndex int             `json:"chapterIndex"`
	Lessons      []*LessonResult `json:"lessons"`
}

// ResultDocument is the portable output of one scraping run. TotalChapters
// and TotalLessons always reflect the originally built plan, not the number
// of lessons actually processed; Cancelled distinguishes a run stopped early
// from one that ran to completion.
type ResultDocument struct {
	ID            string           `json:"id,omitempty"`
	Cancelled     bool             `json:"cancelled"`
	CourseTitle   string           `json:"courseTitle"`
	CurriculumURL string           `json:"curriculumUrl"`
	ExtractedAt   time.Time        `json:"extractedAt"`
	TotalChapters int              `json:"totalChapters"`
	TotalLessons  int              `json:"totalLessons"`
	Chapters      []*ChapterResult `json:"chapters"`
}

// Validate returns an error if the document contains invalid fields.
func (d *ResultDocument) Validate() error {
	if d.CourseTitle == "" {
		return Errorf(EINVALID, "course title required")
	}
	if len(d.Chapters) == 0 {
		return Errorf(EINVALID, "document has no chapters")
	}
	return nil
}

// Lessons returns all lesson results in plan order.
func (d *ResultDocument) Lessons() []*LessonResult {
	var out []*LessonResult
	for _, ch := range d.Chapters {
		out = append(out, ch.Lessons...)
	}
	return out
}

// CompletedCount returns the number of lessons that were processed without
// error.
func (d *ResultDocument) CompletedCount() int {
	n := 0
	for _, l := range d.Lessons() {
		if l.Processed() && l.Error == "" {
			n++
		}
	}
	return n
}

// CourseService archives finished result documents for later inspection,
// export, and summarization.
type CourseService interface {
	// CreateCourse stores a finished document and assigns its ID.
	CreateCourse(ctx context.Context, doc *ResultDocument) error

	// FindCourseByID retrieves a stored document, lessons included.
	// Returns ENOTFOUND if the course does not exist.
	FindCourseByID(ctx context.Context, id string) (*ResultDocument, error)

	// FindCourses retrieves stored documents matching the filter, without
	// lesson content (Chapters is nil on the returned documents).
	FindCourses(ctx context.Context, filter CourseFilter) ([]*ResultDocument, error)

	// DeleteCourse permanently removes a course and its lessons.
	// Returns ENOTFOUND if the course does not exist.
	DeleteCourse(ctx context.Context, id string) error
}

// CourseFilter represents a filter for FindCourses.
type CourseFilter struct {
	ID    *string `json:"id"`
	Title *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
