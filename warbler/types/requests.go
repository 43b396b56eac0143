package types

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ImageURL string `json:"image_url,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	// Password is the caller's current password, required to confirm
	// any profile edit.
	Password       string  `json:"password"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	ImageURL       *string `json:"image_url,omitempty"`
	HeaderImageURL *string `json:"header_image_url,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	Location       *string `json:"location,omitempty"`
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

type LikeResponse struct {
	// Liked reports the state after the toggle: true when the like edge
	// was added, false when it was removed.
	Liked bool `json:"liked"`
}
