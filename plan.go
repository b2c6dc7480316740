package coursedump

import "fmt"

// LessonType classifies a lesson's content, detected heuristically from its
// outline icon. Downstream extraction must tolerate LessonUnknown.
type LessonType string

// Detected lesson content types.
const (
	LessonVideo    LessonType = "video"
	LessonText     LessonType = "text"
	LessonQuiz     LessonType = "quiz"
	LessonDownload LessonType = "download"
	LessonUnknown  LessonType = "unknown"
)

// LessonPlan is one lesson entry in the course plan. Indices are 0-based
// positions within the outline, assigned once at build time and never
// recomputed. Title is the trimmed display text and is the sole key used to
// re-identify the lesson's card after the page re-renders.
type LessonPlan struct {
	ChapterIndex int        `json:"chapterIndex"`
	LessonIndex  int        `json:"lessonIndex"`
	Title        string     `json:"title"`
	Type         LessonType `json:"type"`
}

// ChapterPlan is one chapter with its ordered lessons.
type ChapterPlan struct {
	Index   int          `json:"chapterIndex"`
	Title   string       `json:"chapterTitle"`
	Lessons []LessonPlan `json:"lessons"`
}

// CoursePlan is the ordered chapter/lesson map built from a single pass over
// the curriculum page. It is built once per run and read-only thereafter;
// the interaction loop writes results into a separate structure.
type CoursePlan struct {
	CourseTitle string        `json:"courseTitle"`
	Chapters    []ChapterPlan `json:"chapters"`
}

// TotalLessons returns the number of lessons across all chapters.
func (p *CoursePlan) TotalLessons() int {
	n := 0
	for _, ch := range p.Chapters {
		n += len(ch.Lessons)
	}
	return n
}

// Validate returns an error if the plan is structurally unusable.
func (p *CoursePlan) Validate() error {
	if len(p.Chapters) == 0 {
		return Errorf(ENOTFOUND, "no chapters found")
	}
	return nil
}

// FallbackChapterTitle returns the placeholder title for an untitled chapter
// at 0-based position i.
func FallbackChapterTitle(i int) string {
	return fmt.Sprintf("Chapter %d", i+1)
}

// FallbackLessonTitle returns the placeholder title for an untitled lesson
// at 0-based position i within its chapter.
func FallbackLessonTitle(i int) string {
	return fmt.Sprintf("Lesson %d", i+1)
}
