package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black       = lipgloss.Color("#000000")
	Red         = lipgloss.Color("#FF5353")
	Pink        = lipgloss.Color("105")
	Yellow      = lipgloss.Color("#DBBD70")
	Green       = lipgloss.Color("34")
	LightGreen  = lipgloss.Color("86")
	Blue        = lipgloss.Color("63")
	Violet      = lipgloss.Color("13")
	Grey        = lipgloss.Color("#737373")
	LightGrey   = lipgloss.Color("245")
	LighterGrey = lipgloss.Color("250")
	White       = lipgloss.Color("#ffffff")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	LogRecordAttributeKey = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(LightGrey)}

	HelpKey = lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}
	HelpDesc = lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	}

	ActiveTabColor   = Violet
	InactiveTabColor = LighterGrey
	DisabledTabColor = Grey

	TitleColor = lipgloss.AdaptiveColor{
		Dark:  "",
		Light: "",
	}
)
