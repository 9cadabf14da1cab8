// Package model defines domain entities used by services and repositories.
package model

import "time"

// Visibility values for a TodoItem. Advisory metadata; access is always
// decided by ownership and team membership.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
	VisibilityTeam    = "team"
)

// Priority values for a TodoItem.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// User is an account. PasswordHash/SaltAuth never leave the server.
type User struct {
	PublicID           string    `json:"public_id"`
	ProfileName        string    `json:"profile_name"`
	Email              string    `json:"email"`
	PasswordHash       []byte    `json:"-"`
	SaltAuth           []byte    `json:"-"`
	ProfilePicture     []byte    `json:"profile_picture,omitempty"`
	LastPasswordChange time.Time `json:"-"`
	JoinedOn           time.Time `json:"-"`
	LastUpdate         time.Time `json:"-"`
	LastActivity       time.Time `json:"-"`
}

// Settings holds per-user preferences, one row per user, same lifetime.
type Settings struct {
	PublicID           string `json:"public_id"`
	UserPublicID       string `json:"user_public_id"`
	Theme              string `json:"theme"`
	SeparateTeamsTodos bool   `json:"separate_teams_todos"`
	HideCompletedTodos bool   `json:"hide_completed_todos"`
	Language           string `json:"language"`
	Timezone           string `json:"timezone"`
}

// DefaultSettings returns the fixed defaults applied at signup and on reset.
func DefaultSettings() Settings {
	return Settings{
		Theme:              "light",
		SeparateTeamsTodos: false,
		HideCompletedTodos: false,
		Language:           "en",
		Timezone:           "UTC",
	}
}

// Team groups users. Members is an ordered list of user public ids; the owner
// is a member from creation. Deleted is a soft flag carried but not enforced
// against reads.
type Team struct {
	PublicID      string    `json:"public_id"`
	OwnerPublicID string    `json:"-"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Members       []string  `json:"members"`
	TeamImage     []byte    `json:"team_image,omitempty"`
	IsActive      bool      `json:"is_active"`
	Deleted       bool      `json:"deleted"`
	LastActivity  time.Time `json:"last_activity"`
	CreatedOn     time.Time `json:"created_on"`
}

// TodoItem is a single to-do record. SharedWith and Visibility are advisory;
// only the owner may touch the item through the single-item endpoints.
type TodoItem struct {
	PublicID     string     `json:"public_id"`
	UserPublicID string     `json:"-"`
	Visibility   string     `json:"visibility"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	DueDate      *time.Time `json:"due_date"`
	Completed    bool       `json:"completed"`
	Priority     string     `json:"priority"`
	AssignedTo   string     `json:"assigned_to,omitempty"`
	SharedWith   []string   `json:"shared_with"`
	CreatedBy    string     `json:"created_by"`
	CreatedOn    time.Time  `json:"created_on"`
}

// Patch types carry merge-patch edits: a nil field means "leave unchanged".
// Only whitelisted fields appear; unknown request fields are dropped during
// decoding and never reach a repository.

// UserPatch covers PUT /users/edit. Password changes require both Password
// (current) and NewPassword.
type UserPatch struct {
	ProfileName    *string `json:"profile_name"`
	Email          *string `json:"email"`
	ProfilePicture *[]byte `json:"profile_picture"`
	Password       *string `json:"password"`
	NewPassword    *string `json:"new_password"`
}

// TeamPatch covers PUT /teams/edit.
type TeamPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Members     *[]string `json:"members"`
	TeamImage   *[]byte   `json:"team_image"`
	IsActive    *bool     `json:"is_active"`
	Deleted     *bool     `json:"deleted"`
}

// TodoPatch covers PUT /todos/edit. DueDate is parsed from the request's
// ISO-8601 string by the HTTP layer.
type TodoPatch struct {
	Title      *string    `json:"title"`
	Summary    *string    `json:"summary"`
	DueDate    *time.Time `json:"-"`
	Completed  *bool      `json:"completed"`
	Priority   *string    `json:"priority"`
	AssignedTo *string    `json:"assigned_to"`
	SharedWith *[]string  `json:"shared_with"`
	Visibility *string    `json:"visibility"`
}

// SettingsPatch covers PUT /settings/edit.
type SettingsPatch struct {
	Theme              *string `json:"theme"`
	SeparateTeamsTodos *bool   `json:"separate_teams_todos"`
	HideCompletedTodos *bool   `json:"hide_completed_todos"`
	Language           *string `json:"language"`
	Timezone           *string `json:"timezone"`
}

// IsZero reports whether no field of the patch is set.
func (p TeamPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.Members == nil &&
		p.TeamImage == nil && p.IsActive == nil && p.Deleted == nil
}

// IsZero reports whether no field of the patch is set.
func (p TodoPatch) IsZero() bool {
	return p.Title == nil && p.Summary == nil && p.DueDate == nil &&
		p.Completed == nil && p.Priority == nil && p.AssignedTo == nil &&
		p.SharedWith == nil && p.Visibility == nil
}

// IsZero reports whether no field of the patch is set.
func (p SettingsPatch) IsZero() bool {
	return p.Theme == nil && p.SeparateTeamsTodos == nil &&
		p.HideCompletedTodos == nil && p.Language == nil && p.Timezone == nil
}

// IsZero reports whether no field of the patch is set.
func (p UserPatch) IsZero() bool {
	return p.ProfileName == nil && p.Email == nil && p.ProfilePicture == nil &&
		p.Password == nil && p.NewPassword == nil
}
