package classifier

import (
	"strings"
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// DefaultKeywords is the fallback keyword set used when none is configured.
var DefaultKeywords = []string{
	"win", "free", "prize", "bonus", "click", "cash", "lottery", "offer", "secure-login",
}

// KeywordHeuristic flags a link as fraudulent when its lowercased text
// contains any keyword. Matching is a single Aho-Corasick pass.
type KeywordHeuristic struct {
	// ahocorasick.Matcher keeps per-match state, so Match calls are serialized.
	mu       sync.Mutex
	matcher  *ahocorasick.Matcher
	keywords []string
}

func NewKeywordHeuristic(keywords []string) *KeywordHeuristic {
	normalized := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		normalized = append(normalized, kw)
	}

	h := &KeywordHeuristic{keywords: normalized}
	if len(normalized) > 0 {
		h.matcher = ahocorasick.NewStringMatcher(normalized)
	}
	return h
}

func (h *KeywordHeuristic) Predict(link string) bool {
	return len(h.Matches(link)) > 0
}

// Matches returns the keywords found in link, in keyword-list order.
func (h *KeywordHeuristic) Matches(link string) []string {
	if h.matcher == nil {
		return nil
	}

	h.mu.Lock()
	hits := h.matcher.Match([]byte(strings.ToLower(link)))
	h.mu.Unlock()

	if len(hits) == 0 {
		return nil
	}
	found := make([]bool, len(h.keywords))
	for _, idx := range hits {
		found[idx] = true
	}
	out := make([]string, 0, len(hits))
	for i, ok := range found {
		if ok {
			out = append(out, h.keywords[i])
		}
	}
	return out
}
