package card

// StyleVariable is a custom property the host may override on the card
// element.
type StyleVariable struct {
	Name    string
	Default string
}

// Style variable names
const (
	VarBackgroundColor = "--background-color"
	VarPrimaryColor    = "--primary-color"
	VarSecondaryColor  = "--secondary-color"
	VarHoverColor      = "--hover-color"
)

// BreakpointPx is the width at which the card switches to the horizontal
// layout.
const BreakpointPx = 425

// StyleVariables lists the exposed style hooks with their defaults
func StyleVariables() []StyleVariable {
	return []StyleVariable{
		{Name: VarBackgroundColor, Default: "#f9f9f9"},
		{Name: VarPrimaryColor, Default: "rgb(9, 9, 9)"},
		{Name: VarSecondaryColor, Default: "rgb(107, 114, 128)"},
		{Name: VarHoverColor, Default: "rgb(18, 72, 180)"},
	}
}
