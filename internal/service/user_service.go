// Package service holds the business flows that span more than one
// collaborator: account lifecycle and ticket orders.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/queue"
	"github.com/iliyamo/acara-ticketing/internal/repository"
	"github.com/iliyamo/acara-ticketing/internal/utils"
	"github.com/iliyamo/acara-ticketing/internal/validation"
)

// ErrUserNotFound is returned for every failed credential check.  An
// unknown identifier and a wrong password are deliberately
// indistinguishable.
var ErrUserNotFound = errors.New("user not found")

// UserStore is the persistence the user flows need.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindActiveByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	ActivateByCode(ctx context.Context, code string) (*model.User, error)
	UpdateProfile(ctx context.Context, id, fullName, profilePicture string) (*model.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) (*model.User, error)
}

// Notifier is told about new accounts.  Implementations publish to the
// broker or send the mail directly.
type Notifier interface {
	UserRegistered(ctx context.Context, ev queue.UserRegisteredEvent) error
}

// UserService implements registration, activation, login and profile
// changes.
type UserService struct {
	users      UserStore
	hasher     *utils.Hasher
	tokens     *utils.TokenIssuer
	notifier   Notifier
	clientHost string
	log        *slog.Logger

	notifyTimeout time.Duration
	pending       sync.WaitGroup
}

// NewUserService wires a UserService.  clientHost is the base of the
// activation link sent to new users.
func NewUserService(users UserStore, hasher *utils.Hasher, tokens *utils.TokenIssuer, notifier Notifier, clientHost string, log *slog.Logger) *UserService {
	return &UserService{
		users:         users,
		hasher:        hasher,
		tokens:        tokens,
		notifier:      notifier,
		clientHost:    clientHost,
		log:           log,
		notifyTimeout: 30 * time.Second,
	}
}

// Register validates the payload, stores the account with its password
// hashed and an activation code derived from its id, then notifies the
// user in the background.  The account stays created even if the
// notification fails.
func (s *UserService) Register(ctx context.Context, in model.RegisterInput) (*model.User, error) {
	if err := validation.Register(in); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	u := &model.User{
		ID:             id,
		FullName:       in.FullName,
		UserName:       in.UserName,
		Email:          in.Email,
		Password:       s.hasher.Hash(in.Password),
		Role:           model.RoleMember,
		ProfilePicture: model.DefaultProfilePicture,
		ActivationCode: s.hasher.Hash(id),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.notify(queue.UserRegisteredEvent{
		UserID:         u.ID,
		FullName:       u.FullName,
		UserName:       u.UserName,
		Email:          u.Email,
		ActivationLink: s.clientHost + "/auth/activation?code=" + u.ActivationCode,
		CreatedAt:      u.CreatedAt,
	})
	return u, nil
}

// notify runs outside the request: it gets its own context so a client
// disconnect does not cancel the mail.
func (s *UserService) notify(ev queue.UserRegisteredEvent) {
	if s.notifier == nil {
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		if err := s.notifier.UserRegistered(ctx, ev); err != nil {
			s.log.Error("registration notification failed", "user_id", ev.UserID, "email", ev.Email, "err", err)
			return
		}
		s.log.Info("registration notification sent", "user_id", ev.UserID)
	}()
}

// Wait blocks until every background notification has finished.
func (s *UserService) Wait() {
	s.pending.Wait()
}

// Login returns a signed token for an active user matching identifier by
// username or email.
func (s *UserService) Login(ctx context.Context, in model.LoginInput) (string, error) {
	if err := validation.Login(in); err != nil {
		return "", err
	}

	u, err := s.users.FindActiveByIdentifier(ctx, in.Identifier)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	if !s.hasher.Matches(u.Password, in.Password) {
		return "", ErrUserNotFound
	}
	return s.tokens.Issue(utils.Claims{ID: u.ID, Role: u.Role})
}

// GetProfile returns the user or nil when id matches nothing.
func (s *UserService) GetProfile(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return u, err
}

// Activate flips the active flag of the user holding code.  An unknown
// code yields nil without error; activating twice is a no-op.
func (s *UserService) Activate(ctx context.Context, in model.ActivationInput) (*model.User, error) {
	if err := validation.Activation(in); err != nil {
		return nil, err
	}
	u, err := s.users.ActivateByCode(ctx, in.Code)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return u, err
}

// UpdateProfile changes the display name and picture.  An empty picture
// keeps the current one.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in model.UpdateProfileInput) (*model.User, error) {
	if err := validation.UpdateProfile(in); err != nil {
		return nil, err
	}
	current, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	picture := in.ProfilePicture
	if picture == "" {
		picture = current.ProfilePicture
	}
	return s.users.UpdateProfile(ctx, id, in.FullName, picture)
}

// UpdatePassword replaces the password after checking the old one.
func (s *UserService) UpdatePassword(ctx context.Context, id string, in model.UpdatePasswordInput) (*model.User, error) {
	if err := validation.UpdatePassword(in); err != nil {
		return nil, err
	}
	current, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if !s.hasher.Matches(current.Password, in.OldPassword) {
		return nil, ErrUserNotFound
	}
	return s.users.UpdatePassword(ctx, id, s.hasher.Hash(in.Password))
}
