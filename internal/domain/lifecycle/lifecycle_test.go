package lifecycle

import (
	"math/rand"
	"testing"

	"quotedesk/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft(id string) entities.Quote {
	return entities.Quote{
		ID:                id,
		CustomerName:      "Ada",
		LineItems:         []entities.LineItem{{Description: "tiling", Quantity: 2, Price: 50}},
		VATPercentage:     15,
		DepositPercentage: 50,
	}
}

func stagesOf(c entities.QuoteCollection, id string) []entities.Stage {
	var out []entities.Stage
	for _, s := range entities.Stages {
		for _, q := range c[s] {
			if q.ID == id {
				out = append(out, s)
			}
		}
	}
	return out
}

func TestFullLifecycle(t *testing.T) {
	c, _, err := SaveDraft(entities.NewQuoteCollection(), draft("draft-1"))
	require.NoError(t, err)

	c, q, err := Send(c, draft("draft-1"), "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", q.Date)
	assert.Equal(t, []string{"2025-03-01"}, q.SentDates)

	c, q, err = Accept(c, "draft-1", "2025-03-02")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", q.AcceptedDate)

	c, q, err = MarkDepositPaid(c, "draft-1", "2025-03-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-03", q.DepositDate)

	c, q, err = MarkWorkComplete(c, "draft-1", "2025-03-04")
	require.NoError(t, err)
	assert.False(t, q.IsPaid)

	c, q, err = MarkFinalPayment(c, "draft-1", "2025-03-05")
	require.NoError(t, err)

	got, stage, ok := c.Find("draft-1")
	require.True(t, ok)
	assert.Equal(t, entities.StageComplete, stage)
	assert.True(t, got.IsPaid)
	assert.Equal(t, q, got)
	assert.Equal(t, "2025-03-01", got.Date)
	assert.Equal(t, "2025-03-02", got.AcceptedDate)
	assert.Equal(t, "2025-03-03", got.DepositDate)
	assert.Equal(t, "2025-03-04", got.CompletedDate)
	assert.Equal(t, "2025-03-05", got.FinalPaymentDate)
	for _, s := range []entities.Stage{entities.StageDraft, entities.StageSent, entities.StageAccepted, entities.StageScheduledWork} {
		assert.Empty(t, c[s], "stage %s should be empty", s)
	}
}

func TestTransitions_WrongBucketIsNotFound(t *testing.T) {
	c, _, err := SaveDraft(entities.NewQuoteCollection(), draft("draft-1"))
	require.NoError(t, err)

	for name, tr := range map[string]Transition{
		"resend":   Resend,
		"accept":   Accept,
		"deposit":  MarkDepositPaid,
		"complete": MarkWorkComplete,
		"final":    MarkFinalPayment,
	} {
		out, _, err := tr(c, "draft-1", "2025-01-01")
		assert.ErrorIs(t, err, ErrQuoteNotFound, name)
		assert.Equal(t, c, out, name)
	}

	_, _, err = Accept(c, "missing", "2025-01-01")
	assert.ErrorIs(t, err, ErrQuoteNotFound)
	_, _, err = DeleteDraft(c, "missing")
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestTransitions_DoNotMutateInput(t *testing.T) {
	c, _, err := SaveDraft(entities.NewQuoteCollection(), draft("draft-1"))
	require.NoError(t, err)
	before := c.Clone()

	_, _, err = Send(c, draft("draft-1"), "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, before, c)
}

func TestResend_AppendsWithoutTouchingDate(t *testing.T) {
	c, _, err := Send(entities.NewQuoteCollection(), draft("quote-1"), "2025-01-01")
	require.NoError(t, err)

	c, _, err = Resend(c, "quote-1", "2025-01-09")
	require.NoError(t, err)
	c, q, err := Resend(c, "quote-1", "2025-01-09")
	require.NoError(t, err)

	assert.Equal(t, "2025-01-01", q.Date)
	assert.Equal(t, []string{"2025-01-01", "2025-01-09", "2025-01-09"}, q.SentDates)
	assert.Len(t, c[entities.StageSent], 1)
}

func TestSend_EditThenSendRemovesDraft(t *testing.T) {
	c, _, err := SaveDraft(entities.NewQuoteCollection(), draft("draft-1"))
	require.NoError(t, err)
	c, _, err = SaveDraft(c, draft("draft-2"))
	require.NoError(t, err)

	edited := draft("draft-1")
	edited.CustomerName = "Grace"
	c, q, err := Send(c, edited, "2025-02-01")
	require.NoError(t, err)

	assert.Equal(t, "Grace", q.CustomerName)
	assert.Equal(t, []entities.Stage{entities.StageSent}, stagesOf(c, "draft-1"))
	assert.Len(t, c[entities.StageDraft], 1)

	_, _, err = Send(c, edited, "2025-02-02")
	assert.ErrorIs(t, err, ErrQuoteExists)
}

func TestSaveDraft_UpdatesInPlace(t *testing.T) {
	c, _, _ := SaveDraft(entities.NewQuoteCollection(), draft("draft-1"))
	c, _, _ = SaveDraft(c, draft("draft-2"))

	updated := draft("draft-1")
	updated.Address = "1 Main St"
	c, _, err := SaveDraft(c, updated)
	require.NoError(t, err)

	require.Len(t, c[entities.StageDraft], 2)
	assert.Equal(t, "draft-2", c[entities.StageDraft][0].ID)
	assert.Equal(t, "1 Main St", c[entities.StageDraft][1].Address)

	_, _, err = SaveDraft(c, entities.Quote{})
	assert.ErrorIs(t, err, ErrMissingQuoteID)
}

func TestMoveInsertsAtHead(t *testing.T) {
	c := entities.NewQuoteCollection()
	c, _, _ = Send(c, draft("quote-1"), "2025-01-01")
	c, _, _ = Send(c, draft("quote-2"), "2025-01-01")
	c, _, _ = Accept(c, "quote-1", "2025-01-02")
	c, _, _ = Accept(c, "quote-2", "2025-01-03")

	require.Len(t, c[entities.StageAccepted], 2)
	assert.Equal(t, "quote-2", c[entities.StageAccepted][0].ID)
}

func TestMarkFinalPayment_Twice(t *testing.T) {
	c, _, _ := Send(entities.NewQuoteCollection(), draft("quote-1"), "2025-01-01")
	c, _, _ = Accept(c, "quote-1", "2025-01-01")
	c, _, _ = MarkDepositPaid(c, "quote-1", "2025-01-01")
	c, _, _ = MarkWorkComplete(c, "quote-1", "2025-01-01")
	c, _, err := MarkFinalPayment(c, "quote-1", "2025-01-02")
	require.NoError(t, err)

	_, _, err = MarkFinalPayment(c, "quote-1", "2025-01-03")
	assert.ErrorIs(t, err, ErrQuoteAlreadyPaid)
}

func TestDeleteDraftAndReset(t *testing.T) {
	c, _, _ := SaveDraft(entities.NewQuoteCollection(), draft("draft-1"))
	c, removed, err := DeleteDraft(c, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, "draft-1", removed.ID)
	assert.Equal(t, 0, c.Count())

	c, _, _ = SaveDraft(c, draft("draft-2"))
	assert.Equal(t, 0, Reset().Count())
}

func TestStageInvariant_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ids := []string{"draft-a", "draft-b", "draft-c", "quote-d"}
	transitions := []Transition{Resend, Accept, MarkDepositPaid, MarkWorkComplete, MarkFinalPayment}

	c := entities.NewQuoteCollection()
	for step := 0; step < 500; step++ {
		id := ids[rng.Intn(len(ids))]
		switch op := rng.Intn(8); {
		case op == 0:
			c, _, _ = SaveDraft(c, draft(id))
		case op == 1:
			c, _, _ = Send(c, draft(id), "2025-01-01")
		case op == 2:
			c, _, _ = DeleteDraft(c, id)
		default:
			c, _, _ = transitions[op-3](c, id, "2025-01-01")
		}

		for _, x := range ids {
			if n := len(stagesOf(c, x)); n > 1 {
				t.Fatalf("step %d: quote %s present in %d buckets", step, x, n)
			}
		}
	}
}
