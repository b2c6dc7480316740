package main

import (
	"fmt"

	"github.com/fwojciec/coursedump"
)

// summaryTokenLimit is the rough context budget for a summary request.
const summaryTokenLimit = 900_000

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	course, err := deps.Courses.FindCourseByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursedump.ErrorMessage(err))
		return err
	}

	// Pre-flight: check the formatted content fits the model's context.
	if deps.TokenCounter != nil {
		content := coursedump.FormatLessons(course.Lessons())
		tokens, err := deps.TokenCounter.CountTokens(deps.Ctx, content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: token count failed: %s\n", coursedump.ErrorMessage(err))
		} else if tokens > summaryTokenLimit {
			fmt.Fprintf(deps.Stderr, "error: course content is %d tokens, over the %d token limit\n", tokens, summaryTokenLimit)
			return coursedump.Errorf(coursedump.EINVALID, "course content too large to summarize")
		}
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursedump.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
