package elements

// Canonical widget-kind identifiers handed to the widget toolkit. Toolkits
// map these onto their own controls; the core never interprets them beyond
// registry lookups.
const (
	ComponentTextField    = "text-field"
	ComponentTextarea     = "textarea"
	ComponentNumberField  = "number-field"
	ComponentSelect       = "select"
	ComponentCheckbox     = "checkbox"
	ComponentRadioGroup   = "radio-group"
	ComponentDatePicker   = "date-picker"
	ComponentFileInput    = "file-input"
	ComponentSignaturePad = "signature-pad"
)
