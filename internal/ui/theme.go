package ui

import "image/color"

// Chrome palette. Button groups carry a base, hover, and pressed shade.
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}

	// Backdrop behind the setup and welcome screens.
	Background = color.RGBA{R: 15, G: 23, B: 42, A: 255}

	ButtonActive   = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	ButtonInactive = color.RGBA{R: 75, G: 85, B: 99, A: 255}
	ButtonHover    = color.RGBA{R: 107, G: 114, B: 128, A: 255}
	ButtonPressed  = color.RGBA{R: 55, G: 65, B: 81, A: 255}

	Red        = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	RedHover   = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	RedPressed = color.RGBA{R: 185, G: 28, B: 28, A: 255}

	Green        = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	GreenHover   = color.RGBA{R: 52, G: 211, B: 153, A: 255}
	GreenPressed = color.RGBA{R: 22, G: 163, B: 74, A: 255}

	Blue        = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	BlueHover   = color.RGBA{R: 96, G: 165, B: 250, A: 255}
	BluePressed = color.RGBA{R: 29, G: 78, B: 216, A: 255}

	Orange        = color.RGBA{R: 249, G: 115, B: 22, A: 255}
	OrangeHover   = color.RGBA{R: 251, G: 146, B: 60, A: 255}
	OrangePressed = color.RGBA{R: 202, G: 138, B: 4, A: 255}

	Amber        = color.RGBA{R: 245, G: 158, B: 11, A: 255}
	AmberHover   = color.RGBA{R: 251, G: 191, B: 36, A: 255}
	AmberPressed = color.RGBA{R: 217, G: 119, B: 6, A: 255}

	Teal        = color.RGBA{R: 0, G: 150, B: 136, A: 255}
	TealHover   = color.RGBA{R: 38, G: 166, B: 154, A: 255}
	TealPressed = color.RGBA{R: 0, G: 121, B: 107, A: 255}

	Purple        = color.RGBA{R: 147, G: 51, B: 234, A: 255}
	PurpleHover   = color.RGBA{R: 168, G: 85, B: 247, A: 255}
	PurplePressed = color.RGBA{R: 126, G: 34, B: 206, A: 255}

	Lilac        = color.RGBA{R: 192, G: 132, B: 252, A: 255}
	LilacHover   = color.RGBA{R: 216, G: 180, B: 254, A: 255}
	LilacPressed = color.RGBA{R: 167, G: 139, B: 250, A: 255}

	Selection = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	Glow      = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	Yellow    = color.RGBA{R: 234, G: 179, B: 8, A: 255}
)

// Styles returns the base, hover, and pressed shades for an action button.
func Styles(a Action) (base, hover, pressed color.RGBA) {
	switch a {
	case ActionClear:
		return Red, RedHover, RedPressed
	case ActionSave:
		return Green, GreenHover, GreenPressed
	case ActionLoad:
		return Blue, BlueHover, BluePressed
	case ActionScreenshot:
		return Teal, TealHover, TealPressed
	case ActionUndo, ActionRedo:
		return Orange, OrangeHover, OrangePressed
	case ActionRows:
		return Amber, AmberHover, AmberPressed
	case ActionARView:
		return Purple, PurpleHover, PurplePressed
	case ActionGenMarker:
		return Lilac, LilacHover, LilacPressed
	default:
		return ButtonInactive, ButtonHover, ButtonPressed
	}
}
