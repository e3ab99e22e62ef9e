package store

import (
	"context"
	"fmt"

	"github.com/cubeai/bubix/ent"
	"github.com/cubeai/bubix/ent/parentpromptrecord"
)

// promptRepo implements PromptRepo backed by ent and the global sequence.
type promptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *promptRepo) AppendParentPrompt(ctx context.Context, data ParentPromptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	status := data.Status
	if status == "" {
		status = "PROCESSED"
	}

	_, err = r.client.ParentPromptRecord.Create().
		SetSequence(seqNum).
		SetParentID(data.ParentID).
		SetChildID(data.ChildID).
		SetAccountID(data.AccountID).
		SetContent(data.Content).
		SetAiResponse(data.AIResponse).
		SetPromptType(data.PromptType).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save parent prompt record: %w", err)
	}
	return nil
}

func (r *promptRepo) RecentByAccount(ctx context.Context, accountID string, limit int) ([]ParentPrompt, error) {
	q := r.client.ParentPromptRecord.Query().
		Where(parentpromptrecord.AccountID(accountID)).
		Order(ent.Desc(parentpromptrecord.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query parent prompts for %s: %w", accountID, err)
	}

	out := make([]ParentPrompt, 0, len(rows))
	for _, pr := range rows {
		out = append(out, ParentPrompt{
			ID:         pr.ID,
			Sequence:   pr.Sequence,
			Timestamp:  pr.Timestamp,
			ParentID:   pr.ParentID,
			ChildID:    pr.ChildID,
			AccountID:  pr.AccountID,
			Content:    pr.Content,
			AIResponse: pr.AiResponse,
			PromptType: pr.PromptType,
			Status:     pr.Status,
		})
	}
	return out, nil
}
