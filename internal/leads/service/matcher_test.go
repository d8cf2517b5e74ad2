package service

import (
	"testing"

	accountrepo "salescrm_backend/internal/accounts/repository"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func candidateAccount(name, normalized string) accountrepo.Account {
	return accountrepo.Account{
		ID:             uuid.New(),
		Name:           name,
		NameNormalized: normalized,
	}
}

func TestScoreCandidatePicksStrongestSignal(t *testing.T) {
	attrs := MatchAttributes{
		NameNormalized: "acme steel",
		Domain:         "acmesteel.com",
		Phone:          "+15125550100",
	}

	account := candidateAccount("Acme Steel Inc", "acme steel")
	account.Domain = strPtr("acmesteel.com")
	account.Phone = strPtr("+15125550100")

	score := scoreCandidate(attrs, account)
	if score == nil {
		t.Fatal("expected a score for a fully matching account")
	}
	if *score != scoreDomainMatch {
		t.Fatalf("score = %v, want domain weight %v", *score, scoreDomainMatch)
	}
}

func TestScoreCandidateExactNameWithoutOtherSignals(t *testing.T) {
	attrs := MatchAttributes{NameNormalized: "acme steel"}
	account := candidateAccount("Acme Steel", "acme steel")

	score := scoreCandidate(attrs, account)
	if score == nil || *score != scoreExactNameMatch {
		t.Fatalf("score = %v, want %v", score, scoreExactNameMatch)
	}
}

func TestScoreCandidateNamePrefixRequiresSameCityAndState(t *testing.T) {
	attrs := MatchAttributes{
		NameNormalized: "acme steel",
		City:           "Austin",
		State:          "TX",
	}

	account := candidateAccount("Acme Supplies", "acme supplies")
	account.City = strPtr("Austin")
	account.State = strPtr("TX")

	score := scoreCandidate(attrs, account)
	if score == nil || *score != scoreNameCityPrefix {
		t.Fatalf("score = %v, want prefix weight %v", score, scoreNameCityPrefix)
	}

	elsewhere := candidateAccount("Acme Supplies", "acme supplies")
	elsewhere.City = strPtr("Dallas")
	elsewhere.State = strPtr("TX")
	if scoreCandidate(attrs, elsewhere) != nil {
		t.Fatal("expected no score for a prefix match in another city")
	}
}

func TestScoreCandidateNilWhenNoSignalVerifies(t *testing.T) {
	attrs := MatchAttributes{NameNormalized: "acme steel"}
	account := candidateAccount("Bravo Industries", "bravo industries")

	if scoreCandidate(attrs, account) != nil {
		t.Fatal("expected nil score when nothing matches")
	}
}

func TestRankCandidatesOrdersStrongestFirstWithNilScoresLast(t *testing.T) {
	attrs := MatchAttributes{
		NameNormalized: "acme steel",
		Phone:          "+15125550100",
	}

	unscored := candidateAccount("Bravo Industries", "bravo industries")
	byName := candidateAccount("Acme Steel", "acme steel")
	byPhone := candidateAccount("Acme Metalworks", "acme metalworks")
	byPhone.Phone = strPtr("+15125550100")

	ranked := RankCandidates(attrs, []accountrepo.Account{unscored, byName, byPhone})
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked candidates, got %d", len(ranked))
	}
	if ranked[0].Account.ID != byPhone.ID {
		t.Fatal("expected the phone match ranked first")
	}
	if ranked[1].Account.ID != byName.ID {
		t.Fatal("expected the name match ranked second")
	}
	if ranked[2].Score != nil {
		t.Fatal("expected the unverifiable candidate last with a nil score")
	}
}

func TestConfidenceLabelTiers(t *testing.T) {
	score := func(v float64) *float64 { return &v }

	cases := []struct {
		score *float64
		want  string
	}{
		{nil, "High"},
		{score(scoreDomainMatch), "High"},
		{score(scoreExactNameMatch), "High"},
		{score(0.70), "Medium"},
		{score(scoreNameCityPrefix), "Medium"},
		{score(0.30), "Low"},
	}
	for _, tc := range cases {
		if got := ConfidenceLabel(tc.score); got != tc.want {
			t.Fatalf("ConfidenceLabel(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestToDuplicateCandidateResponseCarriesScoreAndConfidence(t *testing.T) {
	account := candidateAccount("Acme Steel", "acme steel")
	account.City = strPtr("Austin")
	s := scoreExactNameMatch
	resp := ToDuplicateCandidateResponse(RankedCandidate{Account: account, Score: &s})

	if resp.AccountID != account.ID {
		t.Fatal("expected the account id on the response")
	}
	if resp.Score == nil || *resp.Score != scoreExactNameMatch {
		t.Fatalf("response score = %v, want %v", resp.Score, scoreExactNameMatch)
	}
	if resp.Confidence != "High" {
		t.Fatalf("confidence = %q, want High", resp.Confidence)
	}
}
