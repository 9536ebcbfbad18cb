package repository

import (
	"context"
	"errors"

	"peershare/internal/domain/comment"
	"peershare/internal/infra"
	"peershare/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const commentSelect = `
SELECT c.id, c.text, c.author_id, u.name, c.created
FROM comments c
JOIN users u ON u.id = c.author_id`

type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO comments (text, item_id, author_id, created)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		c.Text, c.ItemID, c.AuthorID, c.Created,
	).Scan(&id)
	if err != nil {
		return 0, classifyPgErr("failed to create comment", err)
	}
	return id, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*usecase.CommentView, error) {
	row := r.db.QueryRow(ctx, commentSelect+` WHERE c.id = $1`, id)
	view, err := scanCommentView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("comment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find comment by id", err)
	}
	return view, nil
}

func (r *CommentRepository) FindByItem(ctx context.Context, itemID int64) ([]*usecase.CommentView, error) {
	rows, err := r.db.Query(ctx, commentSelect+` WHERE c.item_id = $1 ORDER BY c.created`, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	views := []*usecase.CommentView{}
	for rows.Next() {
		view, err := scanCommentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comments", err)
	}
	return views, nil
}

func scanCommentView(row pgx.Row) (*usecase.CommentView, error) {
	var v usecase.CommentView
	err := row.Scan(&v.ID, &v.Text, &v.AuthorID, &v.AuthorName, &v.Created)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
