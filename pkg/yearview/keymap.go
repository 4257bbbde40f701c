package yearview

// command names a recognized keyboard action.
type command int

const (
	cmdNone command = iota
	cmdPrevYear
	cmdNextYear
	cmdPrevRow
	cmdNextRow
	cmdPageHome
	cmdPageEnd
	cmdPageBack
	cmdPageForward
	cmdPageBackFar
	cmdPageForwardFar
	cmdCommit
)

// extendedPageFactor multiplies page jumps when the shift modifier is held.
const extendedPageFactor = 10

// lookupKey maps a Bubble Tea key string to a command. Horizontal keys are
// direction-aware: in right-to-left locales left means forward. Unmapped
// keys return cmdNone and must be left unconsumed so the host's default
// handling still runs.
func lookupKey(key string, rtl bool) command {
	switch key {
	case "left", "h":
		if rtl {
			return cmdNextYear
		}
		return cmdPrevYear
	case "right", "l":
		if rtl {
			return cmdPrevYear
		}
		return cmdNextYear
	case "up", "k":
		return cmdPrevRow
	case "down", "j":
		return cmdNextRow
	case "home":
		return cmdPageHome
	case "end":
		return cmdPageEnd
	case "pgup":
		return cmdPageBack
	case "pgdown":
		return cmdPageForward
	case "shift+pgup":
		return cmdPageBackFar
	case "shift+pgdown":
		return cmdPageForwardFar
	case "enter", "space":
		return cmdCommit
	}
	return cmdNone
}

// yearDelta translates a movement command into a year delta relative to the
// active year. Home and end use truncated modulo, matching PageStart; for
// negative active years the offset keeps the dividend's sign.
func yearDelta(c command, activeYear int) int {
	switch c {
	case cmdPrevYear:
		return -1
	case cmdNextYear:
		return 1
	case cmdPrevRow:
		return -YearsPerRow
	case cmdNextRow:
		return YearsPerRow
	case cmdPageHome:
		return -(activeYear % YearsPerPage)
	case cmdPageEnd:
		return YearsPerPage - activeYear%YearsPerPage - 1
	case cmdPageBack:
		return -YearsPerPage
	case cmdPageForward:
		return YearsPerPage
	case cmdPageBackFar:
		return -YearsPerPage * extendedPageFactor
	case cmdPageForwardFar:
		return YearsPerPage * extendedPageFactor
	}
	return 0
}
