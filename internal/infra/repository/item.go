package repository

import (
	"context"
	"errors"

	"peershare/internal/domain/item"
	"peershare/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemColumns = `id, name, description, available, owner_id, request_id`

type ItemRepository struct {
	db *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO items (name, description, available, owner_id, request_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		i.Name, i.Description, i.Available, i.OwnerID, i.RequestID,
	).Scan(&id)
	if err != nil {
		return 0, classifyPgErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE items SET name = $2, description = $3, available = $4 WHERE id = $1`,
		i.ID, i.Name, i.Description, i.Available,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	itm, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	return itm, nil
}

func (r *ItemRepository) FindByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE owner_id = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		ownerID, limit, offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return collectItems(rows)
}

func (r *ItemRepository) SearchAvailable(ctx context.Context, text string, limit, offset int32) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE available AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		 ORDER BY id LIMIT $2 OFFSET $3`,
		text, limit, offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return collectItems(rows)
}

func (r *ItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE request_id = ANY($1) ORDER BY id`,
		requestIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by request ids", err)
	}
	return collectItems(rows)
}

func scanItem(row pgx.Row) (*item.Item, error) {
	var i item.Item
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func collectItems(rows pgx.Rows) ([]*item.Item, error) {
	defer rows.Close()
	var items []*item.Item
	for rows.Next() {
		itm, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item", err)
		}
		items = append(items, itm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read items", err)
	}
	return items, nil
}
