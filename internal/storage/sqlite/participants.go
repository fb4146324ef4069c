package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/internal/storage"
)

// CreateParticipant inserts a new participant into the database.
func (s *SQLiteStore) CreateParticipant(ctx context.Context, p *models.Participant) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO participants (id, name, email, is_active, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Email, p.Active, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", classify(err))
	}

	return nil
}

// GetParticipant retrieves a participant by ID.
func (s *SQLiteStore) GetParticipant(ctx context.Context, id string) (*models.Participant, error) {
	p := &models.Participant{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, is_active, created_at FROM participants WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Name, &p.Email, &p.Active, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: participant %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return p, nil
}

// ListParticipants retrieves participants ordered by name.
func (s *SQLiteStore) ListParticipants(ctx context.Context, activeOnly bool) ([]*models.Participant, error) {
	query := `SELECT id, name, email, is_active, created_at FROM participants`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY name, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		p := &models.Participant{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Active, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

// UpdateParticipant updates the name, email and active flag of a participant.
func (s *SQLiteStore) UpdateParticipant(ctx context.Context, p *models.Participant) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE participants SET name = ?, email = ?, is_active = ? WHERE id = ?`,
		p.Name, p.Email, p.Active, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}
	return requireAffected(res, "participant", p.ID)
}

// DeleteParticipant removes a participant by ID. Splits cascade; paid
// expenses lose their payer.
func (s *SQLiteStore) DeleteParticipant(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM participants WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	return requireAffected(res, "participant", id)
}

// requireAffected turns a zero-row write into storage.ErrNotFound.
func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", storage.ErrNotFound, kind, id)
	}
	return nil
}
