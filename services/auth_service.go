package services

import (
	"context"
	"strings"

	"github.com/kapilkaushal24/restaurant-management-api/entity"
	"github.com/kapilkaushal24/restaurant-management-api/repository"

	"golang.org/x/crypto/bcrypt"
)

// Fixed work factor; deliberately slow, that is the point.
const bcryptCost = 11

// AuthService handles registration, login and token refresh.
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *TokenService
}

func NewAuthService(repo *repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{userRepo: repo, tokens: tokens}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Session is the authenticated result handed back to the client.
type Session struct {
	UserID       uint        `json:"userId"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         entity.Role `json:"role"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
}

// Register creates the user and issues a token pair. The duplicate
// check is an exact match on the stored email, no normalization.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, ErrInvalidRole
	}

	count, err := s.userRepo.CountByEmail(ctx, in.Email)
	if err != nil {
		return nil, storeErr(err, err)
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, storeErr(err, err)
	}

	return s.newSession(user)
}

// Login verifies the bcrypt hash. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		// unknown email collapses into the same failure as a wrong
		// password below
		return nil, storeErr(err, ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.newSession(user)
}

// Refresh exchanges a structurally valid (possibly expired) token for
// a fresh pair. The presented refresh artifact is not checked against
// a server-side list; revocation tracking is a known limitation.
func (s *AuthService) Refresh(ctx context.Context, oldToken string) (*Session, error) {
	claims, err := s.tokens.ValidateExpired(oldToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, storeErr(err, ErrUserNotFound)
	}
	return s.newSession(user)
}

func (s *AuthService) newSession(user *entity.User) (*Session, error) {
	token, refresh, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		Token:        token,
		RefreshToken: refresh,
	}, nil
}

// ---------------- Bulk registration ----------------

type BulkEntryResult struct {
	Email   string `json:"email"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"userId,omitempty"`
}

type BulkRegisterResult struct {
	TotalProcessed int               `json:"totalProcessed"`
	SuccessCount   int               `json:"successCount"`
	FailureCount   int               `json:"failureCount"`
	Results        []BulkEntryResult `json:"results"`
}

// RegisterBulk attempts every entry independently; one entry failing
// never rolls back or aborts the others.
func (s *AuthService) RegisterBulk(ctx context.Context, entries []RegisterInput) *BulkRegisterResult {
	out := &BulkRegisterResult{
		TotalProcessed: len(entries),
		Results:        make([]BulkEntryResult, 0, len(entries)),
	}
	for _, in := range entries {
		session, err := s.Register(ctx, in)
		if err != nil {
			out.FailureCount++
			out.Results = append(out.Results, BulkEntryResult{
				Email: in.Email, Success: false, Message: err.Error(),
			})
			continue
		}
		out.SuccessCount++
		out.Results = append(out.Results, BulkEntryResult{
			Email: in.Email, Success: true,
			Message: "registered successfully", UserID: session.UserID,
		})
	}
	return out
}

// ListUsers is the SuperAdmin-only directory read; the role check
// happens at the edge.
func (s *AuthService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err, err)
	}
	return users, nil
}
