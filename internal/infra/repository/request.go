package repository

import (
	"context"
	"errors"

	"peershare/internal/domain/request"
	"peershare/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO requests (description, requester_id, created)
		 VALUES ($1, $2, $3) RETURNING id`,
		req.Description, req.RequesterID, req.Created,
	).Scan(&id)
	if err != nil {
		return 0, classifyPgErr("failed to create request", err)
	}
	return id, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id int64) (*request.Request, error) {
	var req request.Request
	err := r.db.QueryRow(ctx,
		`SELECT id, description, requester_id, created FROM requests WHERE id = $1`, id,
	).Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by id", err)
	}
	return &req, nil
}

func (r *RequestRepository) FindByRequester(ctx context.Context, requesterID int64) ([]*request.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, description, requester_id, created FROM requests
		 WHERE requester_id = $1 ORDER BY created DESC`,
		requesterID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list own requests", err)
	}
	return collectRequests(rows)
}

func (r *RequestRepository) FindOthers(ctx context.Context, userID int64, limit, offset int32) ([]*request.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, description, requester_id, created FROM requests
		 WHERE requester_id <> $1 ORDER BY created DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list other requests", err)
	}
	return collectRequests(rows)
}

func collectRequests(rows pgx.Rows) ([]*request.Request, error) {
	defer rows.Close()
	var requests []*request.Request
	for rows.Next() {
		var req request.Request
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request", err)
		}
		requests = append(requests, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read requests", err)
	}
	return requests, nil
}
