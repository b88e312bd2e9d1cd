package repository

import (
	"context"
	"fmt"
)

type AdminsR struct {
	db QueryI
}

func NewAdminsRepository(db QueryI) *AdminsR {
	return &AdminsR{db: db}
}

func (a *AdminsR) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM admins WHERE user_id = $1)`

	if err := a.db.GetContext(ctx, &exists, query, userID); err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}

	return exists, nil
}

func (a *AdminsR) Grant(ctx context.Context, userID int64) error {
	query := `INSERT INTO admins (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`

	_, err := a.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to add admin: %w", err)
	}

	return nil
}

func (a *AdminsR) Admins(ctx context.Context) ([]int64, error) {
	var admins []int64
	query := `SELECT user_id FROM admins ORDER BY granted_at`

	if err := a.db.SelectContext(ctx, &admins, query); err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	return admins, nil
}
