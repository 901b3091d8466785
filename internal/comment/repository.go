// AngelaMos | 2026
// repository.go

package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/streamora/internal/core"
)

type Repository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	ListByVideo(
		ctx context.Context,
		videoID string,
		params ListParams,
	) ([]CommentWithAuthor, int, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, comment *Comment) error {
	query := `
		INSERT INTO comments (id, video_id, author_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, comment, query,
		comment.ID,
		comment.VideoID,
		comment.AuthorID,
		comment.Body,
	)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Comment, error) {
	query := `
		SELECT id, video_id, author_id, body, created_at, updated_at
		FROM comments
		WHERE id = $1`

	var comment Comment
	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get comment: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &comment, nil
}

func (r *repository) ListByVideo(
	ctx context.Context,
	videoID string,
	params ListParams,
) ([]CommentWithAuthor, int, error) {
	params.Normalize()

	var total int
	countQuery := `SELECT COUNT(*) FROM comments WHERE video_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, videoID); err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	order := "DESC"
	if params.Sort == SortOldest {
		order = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.video_id, c.author_id, c.body,
		       c.created_at, c.updated_at,
		       u.name AS author_name,
		       COALESCE(u.username, '') AS author_username,
		       u.avatar_url AS author_avatar_url
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.video_id = $1
		ORDER BY c.created_at %s
		LIMIT $2 OFFSET $3`, order)

	var comments []CommentWithAuthor
	err := r.db.SelectContext(ctx, &comments, query,
		videoID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}

	return comments, total, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete comment: %w", core.ErrNotFound)
	}

	return nil
}
