package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "github.com/AdityaPrasad7/EmployeeManagement-System/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (token string, user UserResponse, err error)
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	GetMe(ctx context.Context, userID string) (*UserResponse, error)

	// ResolveSubject satisfies middleware.SubjectResolver.
	ResolveSubject(ctx context.Context, userID string) (string, error)
}

// CategoryDirectory is the slice of the category store Register needs.
// category.Repository satisfies it; depending on this interface instead keeps
// auth importable from the category package.
type CategoryDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type service struct {
	repo       Repository
	categories CategoryDirectory
}

func NewService(repo Repository, categories CategoryDirectory) Service {
	return &service{repo: repo, categories: categories}
}

func (s *service) Login(ctx context.Context, email, password string) (string, UserResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// same error for unknown email and bad password
		return "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := generateToken(user.ID.String(), user.Role, tokenTTL)
	if err != nil {
		return "", UserResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, mapToUserResponse(*user), nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return UserResponse{}, autherrors.ErrCategoryNotFound
	}
	ok, err := s.categories.Exists(ctx, categoryID.String())
	if err != nil {
		return UserResponse{}, err
	}
	if !ok {
		return UserResponse{}, autherrors.ErrCategoryNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	user := &User{
		ID:         uuid.New(),
		Email:      req.Email,
		Password:   string(hashed),
		Role:       req.Role,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Position:   req.Position,
		CategoryID: &categoryID,
		IsIntern:   req.IsIntern,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	return mapToUserResponse(*user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToUserResponse(*u)
	return &resp, nil
}

func (s *service) ResolveSubject(ctx context.Context, userID string) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", autherrors.ErrUserNotFound
	}
	return u.Role, nil
}

func generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return autherrors.ErrEmailAlreadyRegistered
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return autherrors.ErrEmailAlreadyRegistered
	}
	return err
}

func mapToUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:         u.ID.String(),
		Email:      u.Email,
		Role:       u.Role,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Department: u.Department,
		Position:   u.Position,
		IsIntern:   u.IsIntern,
	}
	if u.CategoryID != nil {
		v := u.CategoryID.String()
		resp.CategoryID = &v
	}
	return resp
}
