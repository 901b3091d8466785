// AngelaMos | 2026
// entity.go

package comment

import (
	"time"
)

type Comment struct {
	ID        string    `db:"id"`
	VideoID   string    `db:"video_id"`
	AuthorID  string    `db:"author_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CommentWithAuthor struct {
	Comment
	AuthorName      string `db:"author_name"`
	AuthorUsername  string `db:"author_username"`
	AuthorAvatarURL string `db:"author_avatar_url"`
}
