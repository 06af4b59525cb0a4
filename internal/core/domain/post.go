package domain

import "time"

// Post is a user-authored post. UserName is the owner's display name captured
// at creation time; it is deliberately not resynced when the owner later
// renames their profile. LikesCount and DislikesCount are denormalized and
// mutated exclusively by the reaction engine.
type Post struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Description   string    `json:"description"`
	Image         string    `json:"image,omitempty"`
	LikesCount    int       `json:"likes_count"`
	DislikesCount int       `json:"dislikes_count"`
	CreatedAt     time.Time `json:"created_at"`
}
