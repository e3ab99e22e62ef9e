package store

import (
	"context"
	"fmt"

	"github.com/cubeai/bubix/ent"
	"github.com/cubeai/bubix/ent/activityrecord"
)

// activityRepo implements ActivityRepo backed by ent.
type activityRepo struct {
	client *ent.Client
}

func (r *activityRepo) RecentByUser(ctx context.Context, userID string, limit int) ([]Activity, error) {
	q := r.client.ActivityRecord.Query().
		Where(activityrecord.UserID(userID)).
		Order(ent.Desc(activityrecord.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activities for %s: %w", userID, err)
	}

	out := make([]Activity, 0, len(rows))
	for _, ar := range rows {
		out = append(out, Activity{
			ID:         ar.ID,
			UserID:     ar.UserID,
			Domain:     ar.Domain,
			NodeKey:    ar.NodeKey,
			Score:      ar.Score,
			Attempts:   ar.Attempts,
			DurationMs: ar.DurationMs,
			CreatedAt:  ar.CreatedAt,
		})
	}
	return out, nil
}

func (r *activityRepo) Append(ctx context.Context, a Activity) error {
	builder := r.client.ActivityRecord.Create().
		SetUserID(a.UserID).
		SetDomain(a.Domain).
		SetNodeKey(a.NodeKey).
		SetScore(a.Score).
		SetAttempts(a.Attempts).
		SetDurationMs(a.DurationMs)

	if !a.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(a.CreatedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save activity record: %w", err)
	}
	return nil
}
