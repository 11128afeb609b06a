// Course model and step title lookup.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// CourseStep is one unit of course material: a title key (used both for
// display and for routing to the right export format) and markdown content.
type CourseStep struct {
	TitleKey string `json:"title_key"`
	Content  string `json:"content"`
}

// Course is the export input: a title plus ordered steps.
type Course struct {
	Title    string       `json:"title"`
	Subject  string       `json:"subject,omitempty"`
	Language string       `json:"language,omitempty"`
	Steps    []CourseStep `json:"steps"`
}

// loadCourse reads a course description from a JSON file.
func loadCourse(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Course
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if c.Title == "" {
		return nil, fmt.Errorf("%s: course has no title", path)
	}
	return &c, nil
}

// defaultStepTitles maps the well-known step keys to display titles.
// A titles JSON file (-titles) can override or extend these.
var defaultStepTitles = map[string]string{
	"course.steps.structure": "1. Course Structure",
	"course.steps.slides":    "2. Presentation Slides",
	"course.steps.exercises": "3. Practical Exercises",
	"course.steps.manual":    "4. Student Manual",
	"course.steps.tests":     "5. Knowledge Tests",
}

// stepTitleLookup returns a lookup function over the default titles plus
// overrides. Unknown keys pass through unchanged.
func stepTitleLookup(overrides map[string]string) func(string) string {
	return func(key string) string {
		if t, ok := overrides[key]; ok {
			return t
		}
		if t, ok := defaultStepTitles[key]; ok {
			return t
		}
		return key
	}
}

// loadTitleOverrides reads a flat key->title JSON file.
func loadTitleOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// stepNumberRe strips leading numbering like "1. " from translated titles.
var stepNumberRe = regexp.MustCompile(`^\d+\.\s*`)

// stripNumbering removes a leading "N. " prefix from a step title.
func stripNumbering(title string) string {
	return stepNumberRe.ReplaceAllString(title, "")
}

// slidesKeyMarker selects the slide-deck export branch. Any other title key
// falls through to document conversion.
const slidesKeyMarker = "slides"

// isSlideStep reports whether a step exports as a slide deck.
func isSlideStep(step CourseStep) bool {
	return strings.Contains(step.TitleKey, slidesKeyMarker)
}

// sanitizeFileTitle converts a course title to a filesystem-safe archive
// stem: non-alphanumerics become underscores, everything lowercased.
func sanitizeFileTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
