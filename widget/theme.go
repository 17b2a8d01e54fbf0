package widget

import "image/color"

// Theme is the palette widgets are created with.
type Theme struct {
	Desktop    color.Color // root background
	Panel      color.Color
	Border     color.Color
	Focus      color.Color // border of the focused widget
	Title      color.Color // window title bar
	TitleText  color.Color
	Text       color.Color
	Button     color.Color
	ButtonText color.Color
}

// DefaultTheme is a dark palette that works on terminals and rasters.
var DefaultTheme = Theme{
	Desktop:    MustHex("#2b3a4a"),
	Panel:      MustHex("#e6e6e6"),
	Border:     MustHex("#555"),
	Focus:      MustHex("#f5a623"),
	Title:      MustHex("#3d6ea5"),
	TitleText:  MustHex("#fff"),
	Text:       MustHex("#111"),
	Button:     MustHex("#c8c8c8"),
	ButtonText: MustHex("#111"),
}
