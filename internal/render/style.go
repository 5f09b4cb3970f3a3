package render

// Color palette and type scale shared by all generator styles. The
// per-section colors are a fixed cosmetic identity: education blue,
// work experience green, projects indigo, achievements amber,
// references purple.

type RGB struct {
	R, G, B int
}

func hexColor(s string) RGB {
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}
	}
	return RGB{
		R: hexByte(s[0], s[1]),
		G: hexByte(s[2], s[3]),
		B: hexByte(s[4], s[5]),
	}
}

func hexByte(hi, lo byte) int {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

// TextStyle is the font spec a text block measures and draws with.
type TextStyle struct {
	Family     string
	Style      string // "", "B", "I", "BI"
	Size       float64 // points
	Color      RGB
	LineHeight float64 // mm
}

// Theme carries every color and font choice the builders need. One
// default theme is shared by the three generator styles; the styles
// differ in layout, not palette.
type Theme struct {
	Name        TextStyle
	Contact     TextStyle
	SectionHead TextStyle
	Body        TextStyle
	BodyBold    TextStyle
	BodyItalic  TextStyle
	Pill        TextStyle

	Rule RGB // section header underline

	SummaryBg RGB

	EduBg, EduAccent         RGB
	WorkBg, WorkAccent       RGB
	ProjBg, ProjAccent       RGB
	AchieveBg, AchieveAccent RGB
	RefBg, RefAccent         RGB
	LangBg, LangAccent       RGB

	TechPillBg, TechPillFg RGB
	SoftPillBg, SoftPillFg RGB
	LangPillBg, LangPillFg RGB
	ProjPillBg, ProjPillFg RGB
}

func defaultTheme() *Theme {
	body := TextStyle{Family: "Times", Size: 10, Color: hexColor("#374151"), LineHeight: 5}
	bold := body
	bold.Style = "B"
	bold.Color = hexColor("#111827")
	italic := body
	italic.Style = "I"
	italic.Color = hexColor("#6b7280")

	return &Theme{
		Name:        TextStyle{Family: "Times", Style: "B", Size: 20, Color: hexColor("#1E40AF"), LineHeight: 9},
		Contact:     TextStyle{Family: "Times", Size: 9, Color: hexColor("#1E40AF"), LineHeight: 4.5},
		SectionHead: TextStyle{Family: "Helvetica", Style: "B", Size: 11, Color: hexColor("#0b63d6"), LineHeight: 6},
		Body:        body,
		BodyBold:    bold,
		BodyItalic:  italic,
		Pill:        TextStyle{Family: "Times", Style: "B", Size: 8.5, LineHeight: 4},

		Rule: hexColor("#0b63d6"),

		SummaryBg: hexColor("#ebf8ff"),

		EduBg: hexColor("#ffffff"), EduAccent: hexColor("#60a5fa"),
		WorkBg: hexColor("#f1f5f9"), WorkAccent: hexColor("#34d399"),
		ProjBg: hexColor("#f1f5f9"), ProjAccent: hexColor("#6366f1"),
		AchieveBg: hexColor("#fef3c7"), AchieveAccent: hexColor("#f59e0b"),
		RefBg: hexColor("#f1f5f9"), RefAccent: hexColor("#a78bfa"),
		LangBg: hexColor("#f0f9ff"), LangAccent: hexColor("#3b82f6"),

		TechPillBg: hexColor("#DBEAFE"), TechPillFg: hexColor("#1E40AF"),
		SoftPillBg: hexColor("#DCFCE7"), SoftPillFg: hexColor("#166534"),
		LangPillBg: hexColor("#f0f9ff"), LangPillFg: hexColor("#111827"),
		ProjPillBg: hexColor("#FEF3C7"), ProjPillFg: hexColor("#92400E"),
	}
}
