package agent

import (
	"regexp"
	"strings"
)

// ActionRequest is the parsed form of an action line: a capability name and
// its verbatim string argument. Transient; produced fresh from each reply.
type ActionRequest struct {
	Name     string
	Argument string
}

// actionRe matches one action line. The name is a bare identifier; the
// argument is the remainder of the line verbatim, further colons included.
// Anchored at line start and case-sensitive on the literal "Action" token.
var actionRe = regexp.MustCompile(`^Action: (\w+): (.*)$`)

// ParseAction scans text line by line and returns the first line matching
// the "Action: <name>: <argument>" grammar, or nil when no line matches.
// Later matching lines are ignored: one action per turn. A reply with no
// action line is a final answer.
func ParseAction(text string) *ActionRequest {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if m := actionRe.FindStringSubmatch(line); m != nil {
			return &ActionRequest{Name: m[1], Argument: m[2]}
		}
	}
	return nil
}
