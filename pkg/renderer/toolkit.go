package renderer

// Toolkit is the boundary to the external widget library. Given a widget
// kind, its props, and the field's initial value, it produces an interactive
// control. The engine never inspects the control's internals: user input
// reaches the session exclusively through the emit callback the toolkit wires
// into its control.
type Toolkit interface {
	Instantiate(kind string, props map[string]any, initial any, emit func(value any)) (Control, error)
}

// Control is the engine's handle on one instantiated widget. The engine only
// pushes error state at it; values flow the other way, through the emit
// callback.
type Control interface {
	ShowError(message string)
	ClearError()
}

// ToolkitFunc adapts a function into a Toolkit.
type ToolkitFunc func(kind string, props map[string]any, initial any, emit func(value any)) (Control, error)

// Instantiate calls the underlying function.
func (fn ToolkitFunc) Instantiate(kind string, props map[string]any, initial any, emit func(value any)) (Control, error) {
	return fn(kind, props, initial, emit)
}

type noopControl struct{}

func (noopControl) ShowError(string) {}

func (noopControl) ClearError() {}

type noopToolkit struct{}

func (noopToolkit) Instantiate(string, map[string]any, any, func(any)) (Control, error) {
	return noopControl{}, nil
}
