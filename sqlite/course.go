package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/fwojciec/coursedump"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ coursedump.CourseService = (*CourseService)(nil)

// CourseService implements coursedump.CourseService using SQLite. A course is
// stored as one row plus one row per lesson; video and attachment metadata
// are serialized as JSON columns since nothing queries into them.
type CourseService struct {
	db *DB
}

// NewCourseService creates a new CourseService.
func NewCourseService(db *DB) *CourseService {
	return &CourseService{db: db}
}

// CreateCourse stores a finished result document and assigns its ID.
func (s *CourseService) CreateCourse(ctx context.Context, doc *coursedump.ResultDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.ExtractedAt.IsZero() {
		doc.ExtractedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO courses (id, title, curriculum_url, cancelled, total_chapters, total_lessons, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.CourseTitle, doc.CurriculumURL, boolToInt(doc.Cancelled),
		doc.TotalChapters, doc.TotalLessons, doc.ExtractedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for _, ch := range doc.Chapters {
		for _, l := range ch.Lessons {
			video, err := marshalJSONColumn(l.Video)
			if err != nil {
				return err
			}
			attachments, err := marshalJSONColumn(l.Attachments)
			if err != nil {
				return err
			}

			_, err = s.db.ExecContext(ctx, `
				INSERT INTO lessons (id, course_id, chapter_index, chapter_title, lesson_index, title, type,
					content_html, text_content, plain_text, markdown, content_hash, video, attachments, error)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, uuid.New().String(), doc.ID, l.ChapterIndex, ch.ChapterTitle, l.LessonIndex, l.Title, string(l.Type),
				l.ContentHTML, l.TextContent, l.PlainText, l.Markdown, l.ContentHash, video, attachments, l.Error)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// FindCourseByID retrieves a stored course, lessons included.
func (s *CourseService) FindCourseByID(ctx context.Context, id string) (*coursedump.ResultDocument, error) {
	var doc coursedump.ResultDocument
	var cancelled int
	var extractedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, curriculum_url, cancelled, total_chapters, total_lessons, extracted_at
		FROM courses
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.CourseTitle, &doc.CurriculumURL, &cancelled,
		&doc.TotalChapters, &doc.TotalLessons, &extractedAt)

	if err == sql.ErrNoRows {
		return nil, coursedump.Errorf(coursedump.ENOTFOUND, "course not found")
	}
	if err != nil {
		return nil, err
	}

	doc.Cancelled = cancelled != 0
	doc.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}

	if err := s.attachLessons(ctx, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// attachLessons loads the course's lessons in plan order and rebuilds the
// chapter hierarchy from the flat rows.
func (s *CourseService) attachLessons(ctx context.Context, doc *coursedump.ResultDocument) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT chapter_index, chapter_title, lesson_index, title, type,
			content_html, text_content, plain_text, markdown, content_hash, video, attachments, error
		FROM lessons
		WHERE course_id = ?
		ORDER BY chapter_index ASC, lesson_index ASC
	`, doc.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	var current *coursedump.ChapterResult
	for rows.Next() {
		var l coursedump.LessonResult
		var chapterTitle, lessonType, video, attachments string

		if err := rows.Scan(&l.ChapterIndex, &chapterTitle, &l.LessonIndex, &l.Title, &lessonType,
			&l.ContentHTML, &l.TextContent, &l.PlainText, &l.Markdown, &l.ContentHash,
			&video, &attachments, &l.Error); err != nil {
			return err
		}

		l.Type = coursedump.LessonType(lessonType)
		if video != "" {
			if err := json.Unmarshal([]byte(video), &l.Video); err != nil {
				return err
			}
		}
		if attachments != "" {
			if err := json.Unmarshal([]byte(attachments), &l.Attachments); err != nil {
				return err
			}
		}

		if current == nil || current.ChapterIndex != l.ChapterIndex {
			current = &coursedump.ChapterResult{
				ChapterTitle: chapterTitle,
				ChapterIndex: l.ChapterIndex,
			}
			doc.Chapters = append(doc.Chapters, current)
		}
		current.Lessons = append(current.Lessons, &l)
	}

	return rows.Err()
}

// FindCourses retrieves stored courses matching the filter, newest first and
// without lesson content.
func (s *CourseService) FindCourses(ctx context.Context, filter coursedump.CourseFilter) ([]*coursedump.ResultDocument, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, curriculum_url, cancelled, total_chapters, total_lessons, extracted_at FROM courses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Title != nil {
		query.WriteString(" AND title LIKE ?")
		args = append(args, "%"+*filter.Title+"%")
	}

	query.WriteString(" ORDER BY extracted_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*coursedump.ResultDocument
	for rows.Next() {
		var doc coursedump.ResultDocument
		var cancelled int
		var extractedAt string

		if err := rows.Scan(&doc.ID, &doc.CourseTitle, &doc.CurriculumURL, &cancelled,
			&doc.TotalChapters, &doc.TotalLessons, &extractedAt); err != nil {
			return nil, err
		}

		doc.Cancelled = cancelled != 0
		doc.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteCourse permanently removes a course; its lessons cascade.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM courses WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return coursedump.Errorf(coursedump.ENOTFOUND, "course not found")
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// marshalJSONColumn serializes v for a JSON text column; nil values and empty
// slices store as the empty string.
func marshalJSONColumn(v any) (string, error) {
	switch x := v.(type) {
	case *coursedump.VideoMeta:
		if x == nil {
			return "", nil
		}
	case []coursedump.Attachment:
		if len(x) == 0 {
			return "", nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
