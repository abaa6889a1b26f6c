// Package mention extracts @name references from comment text and resolves
// them against the participants of a thread.
package mention

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`@(\w+)`)

type Participant struct {
	ID          string
	DisplayName string
}

// Tokens returns the raw @tokens of text without the leading '@', in order
// of appearance. Repeated tokens are kept.
func Tokens(text string) []string {
	matches := tokenPattern.FindAllStringSubmatch(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// Resolve maps every @token in text to the first participant whose display
// name contains the token, ignoring case. The result holds each participant
// id once, ordered by first occurrence in text. Unmatched tokens are dropped.
func Resolve(text string, participants []Participant) []string {
	resolved := []string{}
	if text == "" || len(participants) == 0 {
		return resolved
	}

	names := make([]string, len(participants))
	for i, p := range participants {
		names[i] = strings.ToLower(p.DisplayName)
	}

	seen := make(map[string]struct{}, len(participants))
	for _, token := range Tokens(text) {
		needle := strings.ToLower(token)
		for i, name := range names {
			if !strings.Contains(name, needle) {
				continue
			}
			id := participants[i].ID
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				resolved = append(resolved, id)
			}
			break
		}
	}
	return resolved
}
