package flow

import (
	"sort"
	"strings"
)

// KnownCommands is the full vocabulary of command keywords Maestro
// understands, in canonical order. Membership checks are case-sensitive.
var KnownCommands = []string{
	"tapOn",
	"longPressOn",
	"assertVisible",
	"assertNotVisible",
	"assertTrue",
	"assertFalse",
	"assertThat",
	"launchApp",
	"inputText",
	"clearInput",
	"eraseText",
	"scroll",
	"swipe",
	"scrollUntilVisible",
	"scrollToIndex",
	"scrollUntil",
	"pressKey",
	"hideKeyboard",
	"waitForVisible",
	"waitForNotVisible",
	"waitForAnimationToEnd",
	"runScript",
	"runFlow",
	"runCommand",
	"takeScreenshot",
	"openLink",
	"back",
	"stopApp",
	"copyTextFrom",
	"pasteText",
	"extendState",
	"evalScript",
	"conditional",
	"repeat",
}

// navigationOrWait is the subset of commands that move the UI or wait for
// it to settle, used by the prior-navigation heuristic.
var navigationOrWait = map[string]bool{
	"tapOn":                 true,
	"scroll":                true,
	"swipe":                 true,
	"scrollUntilVisible":    true,
	"scrollToIndex":         true,
	"scrollUntil":           true,
	"launchApp":             true,
	"runFlow":               true,
	"openLink":              true,
	"back":                  true,
	"pressKey":              true,
	"waitForVisible":        true,
	"waitForNotVisible":     true,
	"waitForAnimationToEnd": true,
	"repeat":                true,
	"conditional":           true,
}

var knownCommandSet = func() map[string]bool {
	set := make(map[string]bool, len(KnownCommands))
	for _, name := range KnownCommands {
		set[name] = true
	}
	return set
}()

// IsKnownCommand reports whether name is part of the command vocabulary.
func IsKnownCommand(name string) bool { return knownCommandSet[name] }

// IsNavigationOrWait reports whether name navigates the UI or waits on it.
func IsNavigationOrWait(name string) bool { return navigationOrWait[name] }

// Suggest returns the known commands starting with prefix, sorted. An
// empty prefix returns the whole vocabulary. This backs completion data
// for editor integrations.
func Suggest(prefix string) []string {
	var matches []string
	for _, name := range KnownCommands {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}

// ClosestCommand returns the vocabulary entry nearest to name by edit
// distance, or "" when nothing is reasonably close. Comparison is
// case-insensitive so casing mistakes still find their target.
func ClosestCommand(name string) string {
	best := ""
	bestDist := len(name)/2 + 2 // beyond this a suggestion is noise
	lower := strings.ToLower(name)
	for _, candidate := range KnownCommands {
		dist := editDistance(lower, strings.ToLower(candidate))
		if dist < bestDist {
			bestDist = dist
			best = candidate
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings with
// a two-row matrix.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
