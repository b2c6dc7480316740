package coursedump

import "strings"

// FormatLessons formats lesson results for display or LLM context. Uses the
// best available text rendition per lesson (plain text, then browser text)
// and skips lessons that carry no text at all. Lessons are separated by
// blank lines.
func FormatLessons(lessons []*LessonResult) string {
	if len(lessons) == 0 {
		return ""
	}

	parts := make([]string, 0, len(lessons))
	for _, l := range lessons {
		text := ""
		switch {
		case l.PlainText != nil && *l.PlainText != "":
			text = *l.PlainText
		case l.TextContent != nil && *l.TextContent != "":
			text = *l.TextContent
		}
		if text == "" {
			continue
		}
		parts = append(parts, "## Lesson: "+l.Title+"\n"+text)
	}

	return strings.Join(parts, "\n\n")
}
