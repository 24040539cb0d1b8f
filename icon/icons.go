package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Info
	Warn
	Progress
	Series
	Season
	Episode
	Played
	User
)

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💀", nerd: "", plain: "x", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "✓", squares: "🟩"},
	Info:     {emoji: "💬", nerd: "", plain: "i", squares: "🟦"},
	Warn:     {emoji: "🚧", nerd: "", plain: "!", squares: "🟨"},
	Progress: {emoji: "⏳", nerd: "", plain: "~", squares: "🟪"},
	Series:   {emoji: "📺", nerd: "", plain: "#", squares: "⬛"},
	Season:   {emoji: "📂", nerd: "", plain: "+", squares: "▪️"},
	Episode:  {emoji: "🎞️", nerd: "", plain: "-", squares: "▫️"},
	Played:   {emoji: "👁️", nerd: "", plain: "*", squares: "🔳"},
	User:     {emoji: "👤", nerd: "", plain: "@", squares: "🔲"},
}
