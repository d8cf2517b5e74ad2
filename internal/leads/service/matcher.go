package service

import (
	"sort"
	"strings"

	accountrepo "salescrm_backend/internal/accounts/repository"
	"salescrm_backend/internal/leads/transport"
)

// Signal weights. Domain and phone are near-unique identifiers; an exact
// normalized name is strong; a name prefix in the same city/state is a hint.
const (
	scoreDomainMatch      = 0.95
	scorePhoneMatch       = 0.90
	scoreExactNameMatch   = 0.85
	scoreNameCityPrefix   = 0.60
	namePrefixLength      = 4
	confidenceHighFloor   = 0.85
	confidenceMediumFloor = 0.60
)

// MatchAttributes are the normalized lead signals used for duplicate matching.
type MatchAttributes struct {
	NameNormalized string
	Domain         string
	Phone          string
	City           string
	State          string
}

// RankedCandidate is a candidate account with its strongest matching signal.
// Score is nil when no signal could be re-verified against the row.
type RankedCandidate struct {
	Account accountrepo.Account
	Score   *float64
}

// RankCandidates scores each candidate against the lead signals and returns
// them strongest-first. Candidates with no verifiable signal sort last.
func RankCandidates(attrs MatchAttributes, candidates []accountrepo.Account) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		ranked = append(ranked, RankedCandidate{
			Account: candidate,
			Score:   scoreCandidate(attrs, candidate),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := ranked[i].Score, ranked[j].Score
		switch {
		case si == nil:
			return false
		case sj == nil:
			return true
		default:
			return *si > *sj
		}
	})

	return ranked
}

func scoreCandidate(attrs MatchAttributes, account accountrepo.Account) *float64 {
	best := 0.0

	if attrs.Domain != "" && account.Domain != nil && *account.Domain == attrs.Domain {
		best = max(best, scoreDomainMatch)
	}
	if attrs.Phone != "" && account.Phone != nil && *account.Phone == attrs.Phone {
		best = max(best, scorePhoneMatch)
	}
	if attrs.NameNormalized != "" && account.NameNormalized == attrs.NameNormalized {
		best = max(best, scoreExactNameMatch)
	}
	if best < scoreNameCityPrefix && namePrefixInSameCity(attrs, account) {
		best = scoreNameCityPrefix
	}

	if best == 0 {
		return nil
	}
	return &best
}

func namePrefixInSameCity(attrs MatchAttributes, account accountrepo.Account) bool {
	if attrs.NameNormalized == "" || attrs.City == "" || attrs.State == "" {
		return false
	}
	if account.City == nil || account.State == nil {
		return false
	}
	if !strings.EqualFold(*account.City, attrs.City) || !strings.EqualFold(*account.State, attrs.State) {
		return false
	}

	prefix := attrs.NameNormalized
	if len(prefix) > namePrefixLength {
		prefix = prefix[:namePrefixLength]
	}
	return strings.HasPrefix(account.NameNormalized, prefix)
}

// ConfidenceLabel maps a similarity score to its display tier. A missing
// score reads as "High": the matcher only returned the row because some
// signal fired, so absence of a number is not absence of a match.
func ConfidenceLabel(score *float64) string {
	switch {
	case score == nil:
		return "High"
	case *score >= confidenceHighFloor:
		return "High"
	case *score >= confidenceMediumFloor:
		return "Medium"
	default:
		return "Low"
	}
}

// ToDuplicateCandidateResponse maps a ranked candidate to its transport form.
func ToDuplicateCandidateResponse(c RankedCandidate) transport.DuplicateCandidateResponse {
	return transport.DuplicateCandidateResponse{
		AccountID:   c.Account.ID,
		Name:        c.Account.Name,
		CompanyType: c.Account.CompanyType,
		City:        c.Account.City,
		State:       c.Account.State,
		Score:       c.Score,
		Confidence:  ConfidenceLabel(c.Score),
	}
}
