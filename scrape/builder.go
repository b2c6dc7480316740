package scrape

import (
	"github.com/fwojciec/coursedump"
)

// BuildPlan walks the curriculum page once and produces the ordered course
// plan the interaction loop consumes. The plan is built from a single DOM
// snapshot, so elements need no deduplication; chapter and lesson indices
// are positional and assigned exactly once here.
//
// Zero resolvable chapter containers is the run's only fatal condition and
// is returned as ENOTFOUND without retrying.
func BuildPlan(root coursedump.Node, sel coursedump.SelectorSet) (*coursedump.CoursePlan, error) {
	containers := sel.FindAll(root, coursedump.RoleChapterContainer)
	if len(containers) == 0 {
		return nil, coursedump.Errorf(coursedump.ENOTFOUND, "no chapters found")
	}

	plan := &coursedump.CoursePlan{}
	if title, ok := sel.FindOne(root, coursedump.RoleCourseTitle); ok {
		if text, err := title.Text(); err == nil {
			plan.CourseTitle = coursedump.CollapseSpace(text)
		}
	}

	for i, container := range containers {
		chapter := coursedump.ChapterPlan{
			Index: i,
			Title: nodeTitle(container, sel, coursedump.RoleChapterTitle, coursedump.FallbackChapterTitle(i)),
		}

		for j, card := range sel.FindAll(container, coursedump.RoleLessonCard) {
			chapter.Lessons = append(chapter.Lessons, coursedump.LessonPlan{
				ChapterIndex: i,
				LessonIndex:  j,
				Title:        nodeTitle(card, sel, coursedump.RoleLessonTitle, coursedump.FallbackLessonTitle(j)),
				Type:         DetectLessonType(card, sel),
			})
		}

		plan.Chapters = append(plan.Chapters, chapter)
	}

	return plan, nil
}

// nodeTitle resolves a title role within node, returning fallback when the
// role cannot be resolved or yields blank text.
func nodeTitle(node coursedump.Node, sel coursedump.SelectorSet, role coursedump.Role, fallback string) string {
	titleNode, ok := sel.FindOne(node, role)
	if !ok {
		return fallback
	}
	text, err := titleNode.Text()
	if err != nil {
		return fallback
	}
	if trimmed := coursedump.CollapseSpace(text); trimmed != "" {
		return trimmed
	}
	return fallback
}
