package coursedump

// Role names a semantic element the scraper needs to locate on the
// curriculum or lesson-detail view.
type Role string

// Semantic roles resolved through selector fallback lists.
const (
	RoleCourseTitle      Role = "courseTitle"
	RoleChapterContainer Role = "chapterContainer"
	RoleChapterTitle     Role = "chapterTitle"
	RoleLessonCard       Role = "lessonCard"
	RoleLessonTitle      Role = "lessonTitle"
	RoleLessonIcon       Role = "lessonIcon"
	RoleLessonClick      Role = "lessonClickTarget"
	RoleDetailTitle      Role = "detailTitle"
	RoleTextEditor       Role = "textEditor"
	RoleEditorFrame      Role = "editorFrame"
	RoleVideoPlayer      Role = "videoPlayer"
	RoleDownloadLink     Role = "downloadLink"
)

// SelectorSet maps a semantic role to an ordered fallback list of CSS
// selectors, most stable first. Order is significant: resolution always
// tries selectors in listed order and stops at the first one that matches;
// matches are never merged across selectors.
type SelectorSet map[Role][]string

// FindOne resolves a role against node and returns the first element
// matched by any selector in the role's fallback list. Selectors that fail
// to compile are skipped, never propagated.
func (s SelectorSet) FindOne(node Node, role Role) (Node, bool) {
	return FindOne(node, s[role])
}

// FindAll resolves a role against node and returns all matches of the first
// selector that yields at least one match.
func (s SelectorSet) FindAll(node Node, role Role) []Node {
	return FindAll(node, s[role])
}

// FindOne tries each selector in order against node and returns the first
// matched element. A selector that errors (malformed syntax, unsupported
// pseudo-class) is skipped; it does not abort resolution.
func FindOne(node Node, selectors []string) (Node, bool) {
	if node == nil {
		return nil, false
	}
	for _, selector := range selectors {
		matches, err := node.Select(selector)
		if err != nil {
			continue
		}
		if len(matches) > 0 {
			return matches[0], true
		}
	}
	return nil, false
}

// FindAll tries each selector in order against node and returns all matches
// of the first selector that yields any. It never unions results across
// selectors and does not continue once one selector has succeeded. Returns
// an empty slice when every selector matches nothing or errors.
func FindAll(node Node, selectors []string) []Node {
	if node == nil {
		return nil
	}
	for _, selector := range selectors {
		matches, err := node.Select(selector)
		if err != nil {
			continue
		}
		if len(matches) > 0 {
			return matches
		}
	}
	return nil
}

// DefaultSelectors returns the fallback selector lists for the target
// platform's curriculum editor. Lists are ranked by stability: data
// attributes first, then partial class-name matches, then structural and
// generic tags. The platform's markup drifts over time, so later entries
// trade precision for survival.
func DefaultSelectors() SelectorSet {
	return SelectorSet{
		RoleCourseTitle: {
			"[data-testid='course-title']",
			"[class*='course-name']",
			"header h1",
			"h1",
		},
		RoleChapterContainer: {
			"[data-testid='chapter-container']",
			"[data-chapter-id]",
			"div[class*='chapter-wrapper']",
			"section[class*='chapter']",
			"div[class*='curriculum-section']",
		},
		RoleChapterTitle: {
			"[data-testid='chapter-title']",
			"[class*='chapter-title']",
			"[class*='section-title']",
			"h2",
			"h3",
		},
		RoleLessonCard: {
			"[data-testid='lesson-card']",
			"[data-lesson-id]",
			"div[class*='lesson-card']",
			"li[class*='lesson']",
			"div[class*='curriculum-item']",
		},
		RoleLessonTitle: {
			"[data-testid='lesson-title']",
			"[class*='lesson-title']",
			"[class*='item-title']",
			"span[class*='title']",
			"p",
		},
		RoleLessonIcon: {
			"[data-testid='lesson-icon']",
			"[class*='lesson-icon']",
			"svg",
			"i[class*='icon']",
			"img[class*='icon']",
		},
		RoleLessonClick: {
			"[data-testid='lesson-link']",
			"a[class*='lesson']",
			"button",
			"a",
		},
		RoleDetailTitle: {
			"[data-testid='editor-lesson-title']",
			"[class*='editor-header'] [class*='title']",
			"[class*='lesson-editor'] h1",
			"main h1",
			"main h2",
		},
		RoleTextEditor: {
			"[data-testid='rich-text-editor']",
			"[class*='rich-text'] [contenteditable]",
			"div[class*='editor-content']",
			"[contenteditable='true']",
			"[role='textbox']",
		},
		RoleEditorFrame: {
			"iframe[class*='editor']",
			"iframe[title*='editor' i]",
			"iframe",
		},
		RoleVideoPlayer: {
			"[data-testid='video-player']",
			"video[src]",
			"video source[src]",
			"[class*='video-player'] video",
			"iframe[src*='player']",
		},
		RoleDownloadLink: {
			"[data-testid='download-link']",
			"a[download]",
			"a[class*='download']",
			"a[href*='/attachments/']",
		},
	}
}
