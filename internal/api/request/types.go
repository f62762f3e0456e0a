package request

// PlayerSignupRequest is the body for POST /auth/signup/player
type PlayerSignupRequest struct {
	FullName        string `json:"full_name"`
	DateOfBirth     string `json:"date_of_birth"` // YYYY-MM-DD
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ParentSignupRequest is the body for POST /auth/signup/parent
type ParentSignupRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmailRequest is the body for password reset and confirmation resend
type EmailRequest struct {
	Email string `json:"email"`
}

// AccountTypeRequest is the body for POST /flow/account-type
type AccountTypeRequest struct {
	AccountType string `json:"account_type"`
}

// PlayerProfileRequest is the body for POST /profiles/player
type PlayerProfileRequest struct {
	Position      string `json:"position"`
	Location      string `json:"location"`
	Nationality   string `json:"nationality"`
	ClubName      string `json:"club_name,omitempty"`
	Height        string `json:"height,omitempty"`
	Weight        string `json:"weight,omitempty"`
	PreferredFoot string `json:"preferred_foot"`
	HighlightLink string `json:"highlight_link,omitempty"`
}

// ChildProfileRequest is the body for POST /profiles/child
type ChildProfileRequest struct {
	FullName      string `json:"full_name"`
	DateOfBirth   string `json:"date_of_birth"` // DD/MM/YYYY
	Position      string `json:"position"`
	Location      string `json:"location"`
	Nationality   string `json:"nationality"`
	ClubName      string `json:"club_name,omitempty"`
	Height        string `json:"height,omitempty"`
	Weight        string `json:"weight,omitempty"`
	PreferredFoot string `json:"preferred_foot"`
	HighlightLink string `json:"highlight_link,omitempty"`
}
