package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// colorschemes maps the color_scheme config value to a tview theme
var (
	colorschemes = map[string]tview.Theme{
		"default": tview.Theme{
			PrimitiveBackgroundColor:    tcell.ColorDefault,
			ContrastBackgroundColor:     tcell.ColorGray,
			MoreContrastBackgroundColor: tcell.ColorSteelBlue,
			BorderColor:                 tcell.ColorGray,
			TitleColor:                  tcell.ColorRed,
			GraphicsColor:               tcell.ColorBlue,
			PrimaryTextColor:            tcell.ColorLightGray,
			SecondaryTextColor:          tcell.ColorYellow,
			TertiaryTextColor:           tcell.ColorOrange,
			InverseTextColor:            tcell.ColorPurple,
			ContrastSecondaryTextColor:  tcell.ColorLime,
		},
		"gruvbox": tview.Theme{
			PrimitiveBackgroundColor:    tcell.NewHexColor(0x282828),
			ContrastBackgroundColor:     tcell.ColorDarkGoldenrod,
			MoreContrastBackgroundColor: tcell.ColorDarkSlateGray,
			BorderColor:                 tcell.ColorLightGray,
			TitleColor:                  tcell.ColorRed,
			GraphicsColor:               tcell.ColorDarkCyan,
			PrimaryTextColor:            tcell.ColorLightGray,
			SecondaryTextColor:          tcell.ColorYellow,
			TertiaryTextColor:           tcell.ColorOrange,
			InverseTextColor:            tcell.ColorWhite,
			ContrastSecondaryTextColor:  tcell.ColorLightGreen,
		},
		"solarized": tview.Theme{
			PrimitiveBackgroundColor:    tcell.NewHexColor(0x002b36),
			ContrastBackgroundColor:     tcell.ColorDarkCyan,
			MoreContrastBackgroundColor: tcell.ColorDarkSlateGray,
			BorderColor:                 tcell.ColorLightBlue,
			TitleColor:                  tcell.ColorRed,
			GraphicsColor:               tcell.ColorBlue,
			PrimaryTextColor:            tcell.ColorWhite,
			SecondaryTextColor:          tcell.ColorYellow,
			TertiaryTextColor:           tcell.ColorOrange,
			InverseTextColor:            tcell.ColorWhite,
			ContrastSecondaryTextColor:  tcell.ColorLightCyan,
		},
		"dracula": tview.Theme{
			PrimitiveBackgroundColor:    tcell.NewHexColor(0x282a36),
			ContrastBackgroundColor:     tcell.ColorDarkMagenta,
			MoreContrastBackgroundColor: tcell.ColorDarkGray,
			BorderColor:                 tcell.ColorLightGray,
			TitleColor:                  tcell.ColorRed,
			GraphicsColor:               tcell.ColorDarkCyan,
			PrimaryTextColor:            tcell.ColorWhite,
			SecondaryTextColor:          tcell.ColorYellow,
			TertiaryTextColor:           tcell.ColorOrange,
			InverseTextColor:            tcell.ColorWhite,
			ContrastSecondaryTextColor:  tcell.ColorLightGreen,
		},
		"paper": tview.Theme{
			PrimitiveBackgroundColor:    tcell.NewHexColor(0xfdf6e3),
			ContrastBackgroundColor:     tcell.ColorLightSteelBlue,
			MoreContrastBackgroundColor: tcell.ColorWheat,
			BorderColor:                 tcell.ColorDarkGray,
			TitleColor:                  tcell.ColorDarkRed,
			GraphicsColor:               tcell.ColorDarkCyan,
			PrimaryTextColor:            tcell.ColorBlack,
			SecondaryTextColor:          tcell.ColorDarkBlue,
			TertiaryTextColor:           tcell.ColorDarkOrange,
			InverseTextColor:            tcell.ColorWhite,
			ContrastSecondaryTextColor:  tcell.ColorDarkGreen,
		},
	}
)
