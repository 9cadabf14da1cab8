package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/mkraev/teamtodo/internal/access"
	pkgcrypto "github.com/mkraev/teamtodo/internal/crypto"
	"github.com/mkraev/teamtodo/internal/errs"
	"github.com/mkraev/teamtodo/internal/model"
	"github.com/mkraev/teamtodo/internal/repository"
	"github.com/mkraev/teamtodo/internal/validate"
)

// SignupInput carries the signup request fields.
type SignupInput struct {
	ProfileName    string
	Email          string
	Password       string
	ProfilePicture []byte
}

// UserService covers signup and self-service profile operations.
type UserService interface {
	// Signup validates input and creates the user with default settings.
	Signup(ctx context.Context, in SignupInput) (*model.User, error)
	// Get returns a profile, readable only by its owner.
	Get(ctx context.Context, identity, publicID string) (*model.User, error)
	// Edit applies a profile patch, including an optional password change.
	Edit(ctx context.Context, identity, publicID string, p model.UserPatch) (*model.User, error)
	// Delete removes the caller's own account.
	Delete(ctx context.Context, identity, publicID string) error
}

type UserServiceImpl struct {
	users repository.UserRepository
	authz *access.Authorizer
}

// NewUserService constructs UserService.
func NewUserService(users repository.UserRepository, authz *access.Authorizer) *UserServiceImpl {
	return &UserServiceImpl{users: users, authz: authz}
}

// Signup creates a user plus its settings row atomically. Duplicate emails
// map to ErrAlreadyExists.
func (s *UserServiceImpl) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	if err := validate.Name(in.ProfileName); err != nil {
		return nil, err
	}
	if err := validate.Email(in.Email); err != nil {
		return nil, err
	}
	if err := validate.Password(in.Password); err != nil {
		return nil, err
	}

	uid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	sid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	salt, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		PublicID:       uid.String(),
		ProfileName:    in.ProfileName,
		Email:          in.Email,
		PasswordHash:   pkgcrypto.HashPassword([]byte(in.Password), salt),
		SaltAuth:       salt,
		ProfilePicture: in.ProfilePicture,
	}
	def := model.DefaultSettings()
	def.PublicID = sid.String()
	def.UserPublicID = u.PublicID

	if err := s.users.CreateWithSettings(ctx, u, &def); err != nil {
		return nil, err
	}
	return u, nil
}

// Get returns the profile after a self-match check.
func (s *UserServiceImpl) Get(ctx context.Context, identity, publicID string) (*model.User, error) {
	if err := s.authz.RequireSelf(identity, publicID); err != nil {
		return nil, err
	}
	return s.users.GetByPublicID(ctx, publicID)
}

// Edit applies present profile fields. A password change requires the
// current password and a valid new one; both failures are reported as
// validation errors, matching the signup taxonomy.
func (s *UserServiceImpl) Edit(ctx context.Context, identity, publicID string, p model.UserPatch) (*model.User, error) {
	if err := s.authz.RequireSelf(identity, publicID); err != nil {
		return nil, err
	}
	u, err := s.users.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if p.IsZero() {
		return nil, fmt.Errorf("%w: No data provided", errs.ErrValidation)
	}

	// A rejected password change must abort the whole edit, so the checks
	// run against the loaded user before any field is persisted.
	var newHash, newSalt []byte
	if p.Password != nil && p.NewPassword != nil {
		if err := validate.Password(*p.NewPassword); err != nil {
			return nil, fmt.Errorf("%w: Invalid password format", errs.ErrValidation)
		}
		if !pkgcrypto.VerifyPassword([]byte(*p.Password), u.SaltAuth, u.PasswordHash) {
			return nil, fmt.Errorf("%w: Current password is incorrect", errs.ErrValidation)
		}
		newSalt, err = pkgcrypto.RandBytes(pkgcrypto.SaltLen)
		if err != nil {
			return nil, err
		}
		newHash = pkgcrypto.HashPassword([]byte(*p.NewPassword), newSalt)
	}

	if err := s.users.UpdateProfile(ctx, publicID, p); err != nil {
		return nil, err
	}
	if newHash != nil {
		if err := s.users.SetPassword(ctx, publicID, newHash, newSalt); err != nil {
			return nil, err
		}
	}
	return s.users.GetByPublicID(ctx, publicID)
}

// Delete removes the caller's own account; settings cascade with it.
func (s *UserServiceImpl) Delete(ctx context.Context, identity, publicID string) error {
	if err := s.authz.RequireSelf(identity, publicID); err != nil {
		return err
	}
	return s.users.Delete(ctx, publicID)
}
