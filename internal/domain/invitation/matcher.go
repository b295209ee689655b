// Package invitation resolves a sign-up email to a pending team invitation.
//
// Strategies run in a fixed order, from strictest to most permissive. A later
// tier is only consulted when every earlier tier found nothing, so an exact
// match always wins over a looser one.
package invitation

import (
	"strings"

	"quotedesk/internal/domain/entities"
)

// Tier names the strategy that produced a match.
type Tier string

const (
	TierExact     Tier = "exact"
	TierSubstring Tier = "substring"
	TierLocalPart Tier = "local_part"
)

// Strategy is a pure predicate over a normalized query and a normalized
// stored email.
type Strategy struct {
	Tier  Tier
	Match func(query, candidate string) bool
}

// DefaultStrategies is the canonical order.
var DefaultStrategies = []Strategy{
	{Tier: TierExact, Match: exactMatch},
	{Tier: TierSubstring, Match: substringMatch},
	{Tier: TierLocalPart, Match: localPartMatch},
}

// Match is a resolved invitation plus the tier that found it.
type Match struct {
	Invitation entities.TeamInvitation `json:"invitation"`
	BusinessID string                  `json:"business_id"`
	Tier       Tier                    `json:"tier"`
}

// Normalize trims and lowercases an email.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LocalPart returns the portion before the last '@', or the whole string.
func LocalPart(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

func exactMatch(query, candidate string) bool {
	return query == candidate
}

func substringMatch(query, candidate string) bool {
	return strings.Contains(candidate, query) || strings.Contains(query, candidate)
}

func localPartMatch(query, candidate string) bool {
	q := LocalPart(query)
	return q != "" && q == LocalPart(candidate)
}

// Matcher runs an ordered strategy list.
type Matcher struct {
	strategies []Strategy
}

// NewMatcher uses DefaultStrategies when none are given.
func NewMatcher(strategies ...Strategy) *Matcher {
	if len(strategies) == 0 {
		strategies = DefaultStrategies
	}
	return &Matcher{strategies: strategies}
}

// Resolve returns the first candidate matched by the earliest tier. Candidates
// with an empty email never match.
func (m *Matcher) Resolve(email string, candidates []entities.TeamInvitation) (Match, bool) {
	query := Normalize(email)
	if query == "" {
		return Match{}, false
	}

	for _, s := range m.strategies {
		for _, c := range candidates {
			stored := Normalize(c.Email)
			if stored == "" {
				continue
			}
			if s.Match(query, stored) {
				return Match{Invitation: c, BusinessID: c.BusinessID, Tier: s.Tier}, true
			}
		}
	}
	return Match{}, false
}
