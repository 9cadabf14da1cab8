package httpapi

import (
	"context"

	"github.com/mkraev/teamtodo/internal/access"
	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
	"github.com/mkraev/teamtodo/internal/repository"
)

// In-memory repositories backing the full handler stack in tests. All state
// flows in through the HTTP surface itself.

type memSettings struct {
	byUser map[string]*model.Settings
}

var _ repository.SettingsRepository = (*memSettings)(nil)

func (f *memSettings) GetByUser(_ context.Context, userPublicID string) (*model.Settings, error) {
	s, ok := f.byUser[userPublicID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *s
	return &c, nil
}

func (f *memSettings) Update(_ context.Context, userPublicID string, p model.SettingsPatch) error {
	s, ok := f.byUser[userPublicID]
	if !ok {
		return errs.ErrNotFound
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.SeparateTeamsTodos != nil {
		s.SeparateTeamsTodos = *p.SeparateTeamsTodos
	}
	if p.HideCompletedTodos != nil {
		s.HideCompletedTodos = *p.HideCompletedTodos
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Timezone != nil {
		s.Timezone = *p.Timezone
	}
	return nil
}

func (f *memSettings) Reset(_ context.Context, userPublicID string) error {
	s, ok := f.byUser[userPublicID]
	if !ok {
		return errs.ErrNotFound
	}
	def := model.DefaultSettings()
	def.PublicID = s.PublicID
	def.UserPublicID = s.UserPublicID
	*s = def
	return nil
}

type memUsers struct {
	byID     map[string]*model.User
	settings *memSettings
}

var _ repository.UserRepository = (*memUsers)(nil)

func (f *memUsers) CreateWithSettings(_ context.Context, u *model.User, s *model.Settings) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return errs.ErrAlreadyExists
		}
	}
	uc := *u
	f.byID[u.PublicID] = &uc
	sc := *s
	f.settings.byUser[s.UserPublicID] = &sc
	return nil
}

func (f *memUsers) GetByPublicID(_ context.Context, publicID string) (*model.User, error) {
	u, ok := f.byID[publicID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *memUsers) GetByProfileName(_ context.Context, profileName string) (*model.User, error) {
	for _, u := range f.byID {
		if u.ProfileName == profileName {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *memUsers) UpdateProfile(_ context.Context, publicID string, p model.UserPatch) error {
	u, ok := f.byID[publicID]
	if !ok {
		return errs.ErrNotFound
	}
	if p.Email != nil {
		for id, other := range f.byID {
			if id != publicID && other.Email == *p.Email {
				return errs.ErrAlreadyExists
			}
		}
		u.Email = *p.Email
	}
	if p.ProfileName != nil {
		u.ProfileName = *p.ProfileName
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
	return nil
}

func (f *memUsers) SetPassword(_ context.Context, publicID string, hash, salt []byte) error {
	u, ok := f.byID[publicID]
	if !ok {
		return errs.ErrNotFound
	}
	u.PasswordHash = hash
	u.SaltAuth = salt
	return nil
}

func (f *memUsers) Delete(_ context.Context, publicID string) error {
	if _, ok := f.byID[publicID]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, publicID)
	delete(f.settings.byUser, publicID)
	return nil
}

type memTeams struct {
	byID map[string]*model.Team
}

var _ repository.TeamRepository = (*memTeams)(nil)

func (f *memTeams) Create(_ context.Context, t *model.Team) error {
	c := *t
	f.byID[t.PublicID] = &c
	return nil
}

func (f *memTeams) GetByPublicID(_ context.Context, publicID string) (*model.Team, error) {
	t, ok := f.byID[publicID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *t
	return &c, nil
}

func (f *memTeams) GetByName(_ context.Context, name string) (*model.Team, error) {
	for _, t := range f.byID {
		if t.Name == name {
			c := *t
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *memTeams) ListByMember(_ context.Context, userPublicID string) ([]model.Team, error) {
	out := []model.Team{}
	for _, t := range f.byID {
		if access.IsMember(t, userPublicID) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *memTeams) Update(_ context.Context, publicID string, p model.TeamPatch) error {
	t, ok := f.byID[publicID]
	if !ok {
		return errs.ErrNotFound
	}
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Members != nil {
		t.Members = *p.Members
	}
	if p.TeamImage != nil {
		t.TeamImage = *p.TeamImage
	}
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}
	if p.Deleted != nil {
		t.Deleted = *p.Deleted
	}
	return nil
}

func (f *memTeams) Delete(_ context.Context, publicID string) error {
	if _, ok := f.byID[publicID]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, publicID)
	return nil
}

func (f *memTeams) AppendMember(_ context.Context, teamPublicID, userPublicID string) error {
	t, ok := f.byID[teamPublicID]
	if !ok {
		return errs.ErrNotFound
	}
	if access.IsMember(t, userPublicID) {
		return errs.ErrAlreadyExists
	}
	t.Members = append(t.Members, userPublicID)
	return nil
}

type memTodos struct {
	items []model.TodoItem
	teams *memTeams
}

var _ repository.TodoRepository = (*memTodos)(nil)

func (f *memTodos) Create(_ context.Context, t *model.TodoItem) error {
	f.items = append(f.items, *t)
	return nil
}

func (f *memTodos) GetOwned(_ context.Context, ownerPublicID, publicID string) (*model.TodoItem, error) {
	for i := range f.items {
		if f.items[i].PublicID == publicID && f.items[i].UserPublicID == ownerPublicID {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *memTodos) ListVisible(ctx context.Context, userPublicID string) ([]model.TodoItem, error) {
	teamIDs := map[string]bool{}
	ts, _ := f.teams.ListByMember(ctx, userPublicID)
	for _, t := range ts {
		teamIDs[t.PublicID] = true
	}
	out := []model.TodoItem{}
	for _, it := range f.items {
		if it.UserPublicID == userPublicID || teamIDs[it.AssignedTo] {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *memTodos) ListByTeam(_ context.Context, teamPublicID string) ([]model.TodoItem, error) {
	out := []model.TodoItem{}
	for _, it := range f.items {
		if it.AssignedTo == teamPublicID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *memTodos) Update(_ context.Context, ownerPublicID, publicID string, p model.TodoPatch) error {
	for i := range f.items {
		it := &f.items[i]
		if it.PublicID != publicID || it.UserPublicID != ownerPublicID {
			continue
		}
		if p.Title != nil {
			it.Title = *p.Title
		}
		if p.Summary != nil {
			it.Summary = *p.Summary
		}
		if p.DueDate != nil {
			it.DueDate = p.DueDate
		}
		if p.Completed != nil {
			it.Completed = *p.Completed
		}
		if p.Priority != nil {
			it.Priority = *p.Priority
		}
		if p.AssignedTo != nil {
			it.AssignedTo = *p.AssignedTo
		}
		if p.SharedWith != nil {
			it.SharedWith = *p.SharedWith
		}
		if p.Visibility != nil {
			it.Visibility = *p.Visibility
		}
		return nil
	}
	return errs.ErrNotFound
}

func (f *memTodos) Delete(_ context.Context, ownerPublicID, publicID string) error {
	for i := range f.items {
		if f.items[i].PublicID == publicID && f.items[i].UserPublicID == ownerPublicID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}
