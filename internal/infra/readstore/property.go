package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyReadStore struct {
	db db.DBTX
}

func NewPropertyReadStore(dbtx db.DBTX) *PropertyReadStore {
	return &PropertyReadStore{db: dbtx}
}

const findPropertyByIDSQL = `
SELECT id, title, city, property_type, nightly_rate_cents, max_guests
FROM properties
WHERE id = $1
`

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	var view queries.PropertyView
	row := r.db.QueryRow(ctx, findPropertyByIDSQL, id)
	err := row.Scan(&view.ID, &view.Title, &view.City, &view.PropertyType, &view.NightlyRateCents, &view.MaxGuests)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}
	return &view, nil
}

func (r *PropertyReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.PropertySnapshot{
		ID:               view.ID,
		Title:            view.Title,
		City:             view.City,
		PropertyType:     view.PropertyType,
		NightlyRateCents: view.NightlyRateCents,
		MaxGuests:        view.MaxGuests,
	}, nil
}
