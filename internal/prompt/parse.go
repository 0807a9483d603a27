package prompt

import (
	"errors"
	"regexp"
	"strings"
)

// MaxCandidates is the display cap: no more than this many candidates are
// ever returned to the client.
const MaxCandidates = 7

// ErrNoCandidates means the completion contained no numbered segments at
// all, i.e. the model ignored the formatting instructions.
var ErrNoCandidates = errors.New("no candidates parsed from completion")

// numberMarker matches the (1), (2), ... markers the prompt asks for. The
// fullwidth form （１） is not emitted by the models observed so far.
var numberMarker = regexp.MustCompile(`\(\d+\)`)

// ParseCandidates splits a raw completion into discrete candidate messages
// on the numbering markers, trimming each segment and dropping empty ones.
// Order is preserved and the result is truncated to max entries. This layer
// is purely structural; it never inspects message content.
func ParseCandidates(raw string, max int) ([]string, error) {
	if max <= 0 {
		max = MaxCandidates
	}
	if !numberMarker.MatchString(raw) {
		return nil, ErrNoCandidates
	}

	segments := numberMarker.Split(raw, -1)
	candidates := make([]string, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		candidates = append(candidates, seg)
	}

	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(candidates) > max {
		candidates = candidates[:max]
	}
	return candidates, nil
}
