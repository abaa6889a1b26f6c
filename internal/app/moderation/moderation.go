// Package moderation provides capability predicates that let selected
// participants edit and delete comments they did not write.
package moderation

import (
	"context"
	"strings"
)

// Static grants moderation to a fixed set of participant ids, typically
// taken from configuration.
type Static struct {
	ids map[string]struct{}
}

func NewStatic(ids []string) *Static {
	s := &Static{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
	return s
}

func (s *Static) CanModerate(_ context.Context, actorID string) bool {
	if s == nil || actorID == "" {
		return false
	}
	_, ok := s.ids[actorID]
	return ok
}

func (s *Static) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}
