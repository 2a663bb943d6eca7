package store

import (
	"context"
	"fmt"

	"github.com/studychamp/studychamp/ent"
	"github.com/studychamp/studychamp/ent/flashcard"
)

// cardRepo implements CardRepo backed by ent.
type cardRepo struct {
	client *ent.Client
}

func (r *cardRepo) SaveCards(ctx context.Context, cards []CardRecord) error {
	for _, c := range cards {
		exists, err := r.client.Flashcard.Query().
			Where(flashcard.CardID(c.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check card %s: %w", c.ID, err)
		}
		if exists {
			continue
		}

		create := r.client.Flashcard.Create().
			SetCardID(c.ID).
			SetTopic(c.Topic).
			SetQuestion(c.Question).
			SetAnswer(c.Answer).
			SetStatus(c.Status)
		if !c.CreatedAt.IsZero() {
			create = create.SetCreatedAt(c.CreatedAt)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("save card %s: %w", c.ID, err)
		}
	}
	return nil
}

func (r *cardRepo) ListCards(ctx context.Context) ([]CardRecord, error) {
	rows, err := r.client.Flashcard.Query().
		Order(ent.Asc(flashcard.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}

	out := make([]CardRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, CardRecord{
			ID:        row.CardID,
			Topic:     row.Topic,
			Question:  row.Question,
			Answer:    row.Answer,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *cardRepo) UpdateStatus(ctx context.Context, id, status string) error {
	n, err := r.client.Flashcard.Update().
		Where(flashcard.CardID(id)).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update card %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("card %q not found", id)
	}
	return nil
}

func (r *cardRepo) DeleteCard(ctx context.Context, id string) error {
	n, err := r.client.Flashcard.Delete().
		Where(flashcard.CardID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete card %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("card %q not found", id)
	}
	return nil
}
