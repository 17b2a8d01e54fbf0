package gadget

// UIState holds the pointer and focus state owned by the App.
// Zero handles mean nothing is pressed or focused.
type UIState struct {
	Clicked Handle // node holding the current pointer press
	Focused Handle // node receiving key events
}
