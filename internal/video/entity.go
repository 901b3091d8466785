// AngelaMos | 2026
// entity.go

package video

import (
	"time"

	"github.com/angelamos/streamora/internal/core"
)

type Video struct {
	ID           string         `db:"id"`
	OwnerID      string         `db:"owner_id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	VideoURL     string         `db:"video_url"`
	ThumbnailURL string         `db:"thumbnail_url"`
	Tags         core.TextArray `db:"tags"`
	LikesCount   int            `db:"likes_count"`
	Views        int64          `db:"views"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// VideoWithOwner carries the owner summary joined in list and detail
// queries. Liked is only populated when the viewer is known.
type VideoWithOwner struct {
	Video
	OwnerName      string `db:"owner_name"`
	OwnerUsername  string `db:"owner_username"`
	OwnerAvatarURL string `db:"owner_avatar_url"`
	Liked          bool   `db:"liked"`
}
