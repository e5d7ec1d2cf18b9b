package models

// UserProfile is the career-planning profile attached to an account.
// Exactly one profile exists per account.
type UserProfile struct {
	UserID        uint     `json:"userId"`
	Role          Role     `json:"role"`
	Name          string   `json:"name"`
	School        string   `json:"school"`
	Department    string   `json:"department"`
	Grade         int      `json:"grade"`
	TargetJob     string   `json:"targetJob"`
	TargetCompany []string `json:"targetCompany"`
	Skills        []string `json:"skills"`
	Introduction  string   `json:"introduction"`
	ProfileImage  string   `json:"profileImage,omitempty"`
}

// ProfileUpdate carries a partial profile change. Nil fields are left
// unchanged; role is intentionally absent because it is immutable.
type ProfileUpdate struct {
	Name          *string   `json:"name,omitempty"`
	School        *string   `json:"school,omitempty"`
	Department    *string   `json:"department,omitempty"`
	Grade         *int      `json:"grade,omitempty" validate:"omitempty,gte=0,lte=12"`
	TargetJob     *string   `json:"targetJob,omitempty"`
	TargetCompany *[]string `json:"targetCompany,omitempty"`
	Skills        *[]string `json:"skills,omitempty"`
	Introduction  *string   `json:"introduction,omitempty"`
	ProfileImage  *string   `json:"profileImage,omitempty"`
}

// StudentRecord pairs a profile with its owning account for admin listings.
type StudentRecord struct {
	UserID  uint        `json:"userId"`
	Email   string      `json:"email"`
	Profile UserProfile `json:"profile"`
}
