package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type signupRequest struct {
	Email       string `json:"email"         validate:"required,email"`
	FullName    string `json:"full_name"     validate:"required"`
	Password    string `json:"password"      validate:"required,min=6"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the user summary embedded in auth responses. The profile
// picture is only populated on login; signup cannot have one yet.
type userResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	DateOfBirth    string `json:"date_of_birth"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// --- Profile ---

type profileResponse struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	DateOfBirth    string    `json:"date_of_birth"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// --- Posts ---

// postResponse is a post annotated with the requesting user's own reaction.
// UserReaction is null when the user has not reacted.
type postResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Description   string    `json:"description"`
	Image         string    `json:"image,omitempty"`
	LikesCount    int       `json:"likes_count"`
	DislikesCount int       `json:"dislikes_count"`
	UserReaction  *string   `json:"user_reaction"`
	CreatedAt     time.Time `json:"created_at"`
}

// --- Reactions ---

// reactionRequest only requires the field to be present; kind validity is
// judged after the post lookup so a missing post wins over a bad kind.
type reactionRequest struct {
	ReactionType string `json:"reaction_type" validate:"required"`
}

type reactionResponse struct {
	LikesCount    int     `json:"likes_count"`
	DislikesCount int     `json:"dislikes_count"`
	UserReaction  *string `json:"user_reaction"`
}
