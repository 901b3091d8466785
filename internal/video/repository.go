// AngelaMos | 2026
// repository.go

package video

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/angelamos/streamora/internal/core"
)

type Repository interface {
	Create(ctx context.Context, video *Video) error
	GetByID(ctx context.Context, id, viewerID string) (*VideoWithOwner, error)
	List(ctx context.Context, params ListParams) ([]VideoWithOwner, int, error)
	ToggleLike(ctx context.Context, videoID, userID string) (*LikeResponse, error)
	IncrementViews(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const ownerJoin = `
	v.id, v.owner_id, v.title, v.description, v.video_url,
	v.thumbnail_url, v.tags, v.likes_count, v.views,
	v.created_at, v.updated_at,
	u.name AS owner_name,
	COALESCE(u.username, '') AS owner_username,
	u.avatar_url AS owner_avatar_url`

func (r *repository) Create(ctx context.Context, video *Video) error {
	query := `
		INSERT INTO videos (id, owner_id, title, description,
		                    video_url, thumbnail_url, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, video, query,
		video.ID,
		video.OwnerID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.ThumbnailURL,
		video.Tags,
	)
	if err != nil {
		return fmt.Errorf("create video: %w", err)
	}

	return nil
}

// GetByID joins the owner summary and, when viewerID is set, the
// viewer's like state. An anonymous viewer always reads liked=false.
func (r *repository) GetByID(
	ctx context.Context,
	id, viewerID string,
) (*VideoWithOwner, error) {
	query := fmt.Sprintf(`
		SELECT %s,
		       CASE WHEN $2 = '' THEN FALSE ELSE EXISTS(
		           SELECT 1 FROM video_likes
		           WHERE video_id = v.id AND user_id = $2::uuid
		       ) END AS liked
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.id = $1`, ownerJoin)

	var video VideoWithOwner
	err := r.db.GetContext(ctx, &video, query, id, viewerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get video: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}

	return &video, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]VideoWithOwner, int, error) {
	params.Normalize()

	var total int
	countQuery := `SELECT COUNT(*) FROM videos`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, fmt.Errorf("count videos: %w", err)
	}

	orderBy := "v.created_at DESC"
	if params.Sort == SortPopular {
		orderBy = "v.views DESC, v.created_at DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s, FALSE AS liked
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		ORDER BY %s
		LIMIT $1 OFFSET $2`, ownerJoin, orderBy)

	var videos []VideoWithOwner
	err := r.db.SelectContext(ctx, &videos, query,
		params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list videos: %w", err)
	}

	return videos, total, nil
}

// ToggleLike flips the caller's like inside one transaction so the
// likes_count column never drifts from the join table.
func (r *repository) ToggleLike(
	ctx context.Context,
	videoID, userID string,
) (*LikeResponse, error) {
	var resp LikeResponse

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM video_likes WHERE video_id = $1 AND user_id = $2`,
			videoID, userID)
		if err != nil {
			return fmt.Errorf("toggle like: %w", err)
		}

		removed, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("toggle like: %w", err)
		}

		delta := 1
		if removed > 0 {
			delta = -1
		} else {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO video_likes (video_id, user_id)
				 VALUES ($1, $2)`,
				videoID, userID)
			if isForeignKeyViolation(err) {
				// well-formed id, no such video
				return fmt.Errorf("toggle like: %w", core.ErrNotFound)
			}
			if err != nil {
				return fmt.Errorf("toggle like: %w", err)
			}
		}

		err = tx.GetContext(ctx, &resp.LikesCount,
			`UPDATE videos
			 SET likes_count = likes_count + $2, updated_at = NOW()
			 WHERE id = $1
			 RETURNING likes_count`,
			videoID, delta)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("toggle like: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("toggle like: %w", err)
		}

		resp.Liked = removed == 0
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func (r *repository) IncrementViews(
	ctx context.Context,
	id string,
) (int64, error) {
	query := `
		UPDATE videos
		SET views = views + 1
		WHERE id = $1
		RETURNING views`

	var views int64
	err := r.db.GetContext(ctx, &views, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("increment views: %w", core.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("increment views: %w", err)
	}

	return views, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete video: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM videos WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check video exists: %w", err)
	}

	return exists, nil
}
