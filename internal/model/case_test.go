package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCases() []FraudCase {
	return []FraudCase{
		{ID: "case-1", UserName: "John", SecurityAnswer: "blue", Status: StatusPendingReview},
		{ID: "case-2", UserName: "Sara", SecurityAnswer: "mumbai", Status: StatusPendingReview},
		{ID: "case-3", UserName: "john", SecurityAnswer: "red", Status: StatusPendingReview},
	}
}

func TestFindCaseByName(t *testing.T) {
	cases := testCases()

	tests := []struct {
		name   string
		lookup string
		wantID string
	}{
		{name: "exact match", lookup: "John", wantID: "case-1"},
		{name: "uppercase", lookup: "JOHN", wantID: "case-1"},
		{name: "lowercase", lookup: "john", wantID: "case-1"},
		{name: "surrounding whitespace", lookup: "  John  ", wantID: "case-1"},
		{name: "second record", lookup: "sara", wantID: "case-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindCaseByName(cases, tt.lookup)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestFindCaseByName_FirstMatchWins(t *testing.T) {
	// "John" and "john" both normalize to the same key; collection
	// order decides.
	got := FindCaseByName(testCases(), "john")
	require.NotNil(t, got)
	assert.Equal(t, "case-1", got.ID)
}

func TestFindCaseByName_NoMatch(t *testing.T) {
	assert.Nil(t, FindCaseByName(testCases(), "Unknown Person"))
	assert.Nil(t, FindCaseByName(nil, "John"))
}

func TestReplaceCase(t *testing.T) {
	cases := testCases()

	updated := cases[1]
	updated.Status = StatusConfirmedFraud
	updated.OutcomeNote = "disputed"

	result := ReplaceCase(cases, updated)

	require.Len(t, result, 3)
	assert.Equal(t, "case-1", result[0].ID)
	assert.Equal(t, "case-2", result[1].ID)
	assert.Equal(t, "case-3", result[2].ID)
	assert.Equal(t, StatusConfirmedFraud, result[1].Status)
	assert.Equal(t, "disputed", result[1].OutcomeNote)

	// Original collection untouched.
	assert.Equal(t, StatusPendingReview, cases[1].Status)
}

func TestReplaceCase_UnknownIDIsNoOp(t *testing.T) {
	cases := testCases()
	result := ReplaceCase(cases, FraudCase{ID: "missing", Status: StatusConfirmedSafe})
	assert.Equal(t, cases, result)
}

func TestFraudCase_MatchesAnswer(t *testing.T) {
	c := &FraudCase{SecurityAnswer: "blue"}

	tests := []struct {
		name  string
		given string
		want  bool
	}{
		{name: "exact", given: "blue", want: true},
		{name: "uppercase", given: "BLUE", want: true},
		{name: "embedded in sentence", given: "it's blue, I think", want: true},
		{name: "wrong answer", given: "red", want: false},
		{name: "empty reply", given: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.MatchesAnswer(tt.given))
		})
	}
}

func TestFraudCase_MatchesAnswer_EmptyStoredAnswer(t *testing.T) {
	c := &FraudCase{SecurityAnswer: "   "}
	assert.False(t, c.MatchesAnswer("anything"))
	assert.False(t, c.MatchesAnswer(""))
}

func TestCaseStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPendingReview.IsTerminal())
	assert.True(t, StatusConfirmedSafe.IsTerminal())
	assert.True(t, StatusConfirmedFraud.IsTerminal())
	assert.True(t, StatusVerificationFailed.IsTerminal())
}

func TestNewCaseID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewCaseID()
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
