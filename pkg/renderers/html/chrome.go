package html

// ChromeClass is a typed identifier for the semantic CSS classes the preview
// markup carries. Consumers theme the output by targeting these classes.
type ChromeClass string

const (
	ClassForm    ChromeClass = "formkit-form"
	ClassHeader  ChromeClass = "formkit-header"
	ClassField   ChromeClass = "formkit-field"
	ClassLabel   ChromeClass = "formkit-label"
	ClassControl ChromeClass = "formkit-control"
	ClassHelp    ChromeClass = "formkit-help"
	ClassError   ChromeClass = "formkit-error"
	ClassActions ChromeClass = "formkit-actions"
)
