// Package gemini implements course summarization using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/coursedump"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Summarizer implements coursedump.Summarizer at compile time.
var _ coursedump.Summarizer = (*Summarizer)(nil)

// Summarizer implements coursedump.Summarizer using Google Gemini.
type Summarizer struct {
	client  *genai.Client
	courses coursedump.CourseService
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client, courses coursedump.CourseService) *Summarizer {
	return &Summarizer{client: client, courses: courses}
}

// Summarize produces a natural-language summary of a stored course's
// extracted content.
func (s *Summarizer) Summarize(ctx context.Context, courseID string) (string, error) {
	if courseID == "" {
		return "", coursedump.Errorf(coursedump.EINVALID, "course ID required")
	}

	doc, err := s.courses.FindCourseByID(ctx, courseID)
	if err != nil {
		return "", err
	}

	content := coursedump.FormatLessons(doc.Lessons())
	if content == "" {
		return "", coursedump.Errorf(coursedump.ENOTFOUND, "course %q has no text content to summarize", doc.CourseTitle)
	}

	prompt := BuildUserPrompt(doc.CourseTitle, content)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", coursedump.Errorf(coursedump.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant summarizing online course content. Summarize only what the course material actually covers: list the main topics chapter by chapter and note any prerequisites the material assumes. Do not invent content that is not in the material.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the course content.
func BuildUserPrompt(courseTitle, content string) string {
	var sb strings.Builder
	sb.WriteString("<course>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", courseTitle)
	fmt.Fprintf(&sb, "<content>\n%s\n</content>\n", content)
	sb.WriteString("</course>\n\n")
	sb.WriteString("Summarize this course.")
	return sb.String()
}
