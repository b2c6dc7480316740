// Package etree exports result documents as XML.
package etree

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/coursedump"
)

// Ensure Exporter implements coursedump.Exporter at compile time.
var _ coursedump.Exporter = (*Exporter)(nil)

// Exporter serializes a result document as indented XML. The element
// structure mirrors the course hierarchy: course → chapter → lesson.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export serializes doc as XML.
func (e *Exporter) Export(doc *coursedump.ResultDocument) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	course := out.CreateElement("course")
	if doc.ID != "" {
		course.CreateAttr("id", doc.ID)
	}
	course.CreateAttr("title", doc.CourseTitle)
	course.CreateAttr("curriculumUrl", doc.CurriculumURL)
	course.CreateAttr("extractedAt", doc.ExtractedAt.Format(time.RFC3339))
	course.CreateAttr("cancelled", strconv.FormatBool(doc.Cancelled))
	course.CreateAttr("totalChapters", strconv.Itoa(doc.TotalChapters))
	course.CreateAttr("totalLessons", strconv.Itoa(doc.TotalLessons))

	for _, ch := range doc.Chapters {
		chapter := course.CreateElement("chapter")
		chapter.CreateAttr("index", strconv.Itoa(ch.ChapterIndex))
		chapter.CreateAttr("title", ch.ChapterTitle)

		for _, l := range ch.Lessons {
			lesson := chapter.CreateElement("lesson")
			lesson.CreateAttr("index", strconv.Itoa(l.LessonIndex))
			lesson.CreateAttr("title", l.Title)
			lesson.CreateAttr("type", string(l.Type))
			if l.ContentHash != "" {
				lesson.CreateAttr("contentHash", l.ContentHash)
			}

			if l.ContentHTML != nil {
				lesson.CreateElement("content").SetText(*l.ContentHTML)
			}
			if l.PlainText != nil {
				lesson.CreateElement("plainText").SetText(*l.PlainText)
			}
			if l.Markdown != "" {
				lesson.CreateElement("markdown").SetText(l.Markdown)
			}

			if l.Video != nil {
				video := lesson.CreateElement("video")
				video.CreateAttr("url", l.Video.URL)
				video.CreateAttr("kind", string(l.Video.Kind))
				if l.Video.Filename != "" {
					video.CreateAttr("filename", l.Video.Filename)
				}
				if l.Video.Poster != "" {
					video.CreateAttr("poster", l.Video.Poster)
				}
			}

			for _, a := range l.Attachments {
				att := lesson.CreateElement("attachment")
				att.CreateAttr("url", a.URL)
				att.CreateAttr("filename", a.Filename)
				if a.Label != "" {
					att.CreateAttr("label", a.Label)
				}
			}

			if l.Error != "" {
				lesson.CreateElement("error").SetText(l.Error)
			}
		}
	}

	out.Indent(2)
	return out.WriteToBytes()
}
