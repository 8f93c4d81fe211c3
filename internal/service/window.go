package service

import (
	"strconv"
	"strings"

	"github.com/lotto-stats/backend/internal/pkg/apierr"
)

type WindowKind string

const (
	WindowAll    WindowKind = "all"
	WindowRecent WindowKind = "recent"
	WindowRange  WindowKind = "range"
)

// Window selects a slice of the draw history: every draw, the trailing N
// draws, or the draws with index in [Start, End].
type Window struct {
	Kind  WindowKind
	N     int
	Start int
	End   int
}

func AllDraws() Window {
	return Window{Kind: WindowAll}
}

func RecentDraws(n int) Window {
	return Window{Kind: WindowRecent, N: n}
}

func DrawRange(start, end int) Window {
	return Window{Kind: WindowRange, Start: start, End: end}
}

// String renders w in the form accepted by ParseWindow.
func (w Window) String() string {
	switch w.Kind {
	case WindowRecent:
		return "recent:" + strconv.Itoa(w.N)
	case WindowRange:
		return "range:" + strconv.Itoa(w.Start) + "-" + strconv.Itoa(w.End)
	default:
		return string(WindowAll)
	}
}

// ParseWindow accepts "all", "recent:N", "recent_N" and "range:S-E".
func ParseWindow(s string) (Window, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == string(WindowAll) {
		return AllDraws(), nil
	}

	invalid := apierr.ErrInvalidReq.Msg("invalid window %q: expected all, recent:N or range:S-E", s)
	if rest, ok := cutWindowPrefix(s, "recent"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			return Window{}, invalid
		}
		return RecentDraws(n), nil
	}
	if rest, ok := cutWindowPrefix(s, "range"); ok {
		startText, endText, ok := strings.Cut(rest, "-")
		if !ok {
			return Window{}, invalid
		}
		start, err := strconv.Atoi(startText)
		if err != nil {
			return Window{}, invalid
		}
		end, err := strconv.Atoi(endText)
		if err != nil || start <= 0 || end < start {
			return Window{}, invalid
		}
		return DrawRange(start, end), nil
	}
	return Window{}, invalid
}

func cutWindowPrefix(s, prefix string) (string, bool) {
	for _, sep := range []string{":", "_"} {
		if rest, ok := strings.CutPrefix(s, prefix+sep); ok {
			return rest, true
		}
	}
	return "", false
}
