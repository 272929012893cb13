package models

// AuthUser is the payload returned after a successful signup or login.
type AuthUser struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Bio            string `json:"bio"`
	ImageURL       string `json:"imageUrl,omitempty"`
	Token          string `json:"token"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
}

// FollowUser is a follower/following/suggestion listing entry: a trimmed
// account record annotated with the reciprocal follow flag.
type FollowUser struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsFollowing bool   `json:"isFollowing"`
}

// Profile is an account as seen by a particular viewer.
type Profile struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Bio            string `json:"bio"`
	ImageURL       string `json:"imageUrl,omitempty"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	IsFollowing    bool   `json:"isFollowing"`
	IsOwnProfile   bool   `json:"isOwnProfile"`
}
