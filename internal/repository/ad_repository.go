package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/flightads_bot/internal/model"
	"github.com/Freeeeeet/flightads_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdRepository struct {
	*base.Repository
}

func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{Repository: base.NewRepository(pool)}
}

// Insert сохраняет новое объявление, id и created_at назначает база
func (r *AdRepository) Insert(ctx context.Context, ad *model.Ad) error {
	query := `
		INSERT INTO ads (public_id, role, source, destination, flight_date, description, author)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		ad.PublicID,
		ad.Role,
		ad.Source,
		ad.Destination,
		ad.FlightDate,
		ad.Description,
		ad.Author,
	).Scan(&ad.ID, &ad.CreatedAt)

	if err != nil {
		return fmt.Errorf("insert ad: %w", err)
	}

	return nil
}

// ListByAuthor возвращает последние объявления автора
func (r *AdRepository) ListByAuthor(ctx context.Context, author string, limit int) ([]model.Ad, error) {
	query := `
		SELECT id, public_id, role, source, destination, flight_date, description, author, created_at
		FROM ads
		WHERE author = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.Query(ctx, query, author, limit)
	if err != nil {
		return nil, fmt.Errorf("list ads by author: %w", err)
	}
	defer rows.Close()

	var ads []model.Ad
	for rows.Next() {
		var ad model.Ad
		err := rows.Scan(
			&ad.ID,
			&ad.PublicID,
			&ad.Role,
			&ad.Source,
			&ad.Destination,
			&ad.FlightDate,
			&ad.Description,
			&ad.Author,
			&ad.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ad: %w", err)
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ads: %w", err)
	}

	return ads, nil
}
