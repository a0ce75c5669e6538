package domain

// CourseContent represents the text extracted from a single course page
type CourseContent struct {
	URL          string
	MainText     string
	SpeakerNotes string // empty when the page carries no notes element
}

// HasNotes reports whether speaker notes were present on the page
func (c CourseContent) HasNotes() bool {
	return c.SpeakerNotes != ""
}
