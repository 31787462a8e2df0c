package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/platformbuilds/athlos-core/internal/apperr"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/models"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

// AuthStore is the slice of the store the auth service needs.
type AuthStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetRoleByCode(ctx context.Context, code string) (*models.Role, error)
	GetInstitution(ctx context.Context, id uuid.UUID) (*models.Institution, error)
	CountUsers(ctx context.Context) (int, error)
	InsertUser(ctx context.Context, u *models.User) error
}

// AuthService handles login and registration.
type AuthService struct {
	store  AuthStore
	tokens *auth.TokenService
	hasher auth.PasswordHasher
	log    logger.Logger
}

func NewAuthService(store AuthStore, tokens *auth.TokenService, hasher auth.PasswordHasher, log logger.Logger) *AuthService {
	return &AuthService{store: store, tokens: tokens, hasher: hasher, log: log}
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password produce the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("login failed", err)
	}
	if user == nil || !user.IsActive || !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperr.Internal("login failed", err)
	}
	return &models.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Register creates a user and returns a token for it.
//
// Bootstrap procedure: the very first registration may create an admin with
// no institution; that admin then creates institutions and further users.
// After bootstrap every registration must name an existing institution.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.TokenResponse, error) {
	roleCode := req.Role
	if roleCode == "" {
		roleCode = models.RoleAthlete
	}
	if !models.ValidRoleCode(roleCode) {
		return nil, apperr.InvalidArgument("unknown role: " + roleCode)
	}

	var institutionID uuid.NullUUID
	if req.InstitutionID != nil {
		inst, err := s.store.GetInstitution(ctx, *req.InstitutionID)
		if err != nil {
			return nil, apperr.Internal("registration failed", err)
		}
		if inst == nil {
			return nil, apperr.InvalidArgument("invalid institution_id")
		}
		institutionID = uuid.NullUUID{UUID: inst.ID, Valid: true}
	} else {
		if roleCode != models.RoleAdmin {
			return nil, apperr.InvalidArgument("institution_id is required")
		}
		n, err := s.store.CountUsers(ctx)
		if err != nil {
			return nil, apperr.Internal("registration failed", err)
		}
		if n > 0 {
			return nil, apperr.InvalidArgument("institution_id is required")
		}
	}

	role, err := s.store.GetRoleByCode(ctx, roleCode)
	if err != nil {
		return nil, apperr.Internal("registration failed", err)
	}
	if role == nil {
		return nil, apperr.InvalidArgument("unknown role: " + roleCode)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperr.Internal("registration failed", err)
	}

	user := &models.User{
		ID:            uuid.New(),
		InstitutionID: institutionID,
		Email:         req.Email,
		FullName:      req.FullName,
		RoleID:        role.ID,
		RoleCode:      role.Code,
		PasswordHash:  digest,
		IsActive:      true,
	}
	if err := s.store.InsertUser(ctx, user); err != nil {
		// Conflict from a duplicate email passes through as-is.
		if apperr.KindOf(err) != apperr.KindInternal {
			return nil, err
		}
		return nil, apperr.Internal("registration failed", err)
	}

	s.log.Info("user registered", "user_id", user.ID, "role", role.Code)

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperr.Internal("registration failed", err)
	}
	return &models.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
