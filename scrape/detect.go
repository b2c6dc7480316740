package scrape

import (
	"regexp"
	"strings"

	"github.com/fwojciec/coursedump"
)

// typeAttrs are attributes the platform sometimes stamps directly on lesson
// cards. Checked only when the icon heuristic yields nothing.
var typeAttrs = []string{"data-type", "data-content-type", "data-lesson-type"}

// testIDAttrRe strips data-testid attributes from serialized markup before
// keyword matching: the attribute name itself contains "test", which
// collides with the quiz keyword family.
var testIDAttrRe = regexp.MustCompile(`data-testid="[^"]*"`)

// DetectLessonType classifies a lesson card by inspecting its icon's class
// list and serialized markup for keyword families, falling back to explicit
// type attributes on the card itself. This is a heuristic, not
// authoritative: callers must tolerate LessonUnknown.
func DetectLessonType(card coursedump.Node, sel coursedump.SelectorSet) coursedump.LessonType {
	if icon, ok := sel.FindOne(card, coursedump.RoleLessonIcon); ok {
		if class, found := icon.Attr("class"); found {
			if t := keywordType(class); t != coursedump.LessonUnknown {
				return t
			}
		}
		if markup, err := icon.HTML(); err == nil {
			if t := keywordType(testIDAttrRe.ReplaceAllString(markup, "")); t != coursedump.LessonUnknown {
				return t
			}
		}
	}

	for _, attr := range typeAttrs {
		if v, ok := card.Attr(attr); ok {
			if t := keywordType(v); t != coursedump.LessonUnknown {
				return t
			}
		}
	}

	return coursedump.LessonUnknown
}

// keywordType maps a markup/class haystack to a lesson type. Matching is
// case-insensitive; families are checked in the order video, text, quiz,
// download.
func keywordType(haystack string) coursedump.LessonType {
	s := strings.ToLower(haystack)
	switch {
	case containsAny(s, "video", "play"):
		return coursedump.LessonVideo
	case containsAny(s, "file-text", "document", "text"):
		return coursedump.LessonText
	case containsAny(s, "quiz", "question", "test"):
		return coursedump.LessonQuiz
	case strings.Contains(s, "download"):
		return coursedump.LessonDownload
	}
	return coursedump.LessonUnknown
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
