package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/config"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is deliberately indistinguishable between a missing
// user and a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	RegisterClient(ctx context.Context, req dto.RegisterClientRequest) (*dto.AuthResponse, error)
	RegisterEmployee(ctx context.Context, req dto.RegisterEmployeeRequest) (*dto.AuthResponse, error)
	CheckSession(ctx context.Context, userID uuid.UUID) (*dto.SessionResponse, error)
}

type authService struct {
	users     repository.UserRepository
	clients   repository.ClientRepository
	employees repository.EmployeeRepository
	cfg       *config.Config
}

func NewAuthService(
	users repository.UserRepository,
	clients repository.ClientRepository,
	employees repository.EmployeeRepository,
	cfg *config.Config,
) AuthService {
	return &authService{users: users, clients: clients, employees: employees, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByLogin(ctx, req.Login)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.authResponse(user)
}

// RegisterClient creates the Client row and its User row in one transaction:
// either both exist afterwards or neither does.
func (s *authService) RegisterClient(ctx context.Context, req dto.RegisterClientRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	// Pre-check the email so a taken address surfaces as a conflict before
	// any row is written. The unique index still backstops concurrent races.
	if _, err := s.clients.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email %s: %w", req.Email, repository.ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	var user model.User
	txErr := runTx(ctx, s.users.DB(), func(tx *gorm.DB) error {
		client := model.Client{
			Name:       req.Name,
			Surname:    req.Surname,
			Patronymic: req.Patronymic,
			Phone:      req.Phone,
			Email:      req.Email,
		}
		if err := s.clients.CreateTx(ctx, tx, &client); err != nil {
			return err
		}
		user = model.User{
			// Clients authenticate by email; the username mirrors it.
			Username:     req.Email,
			PasswordHash: string(hash),
			Role:         model.RoleClient,
			ClientID:     &client.ID,
		}
		return s.users.CreateTx(ctx, tx, &user)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.authResponse(&user)
}

// RegisterEmployee creates the Employee row and its User row in one
// transaction. The endpoint layer gates this to ADMIN callers.
func (s *authService) RegisterEmployee(ctx context.Context, req dto.RegisterEmployeeRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	var user model.User
	txErr := runTx(ctx, s.users.DB(), func(tx *gorm.DB) error {
		employee := model.Employee{
			Name:       req.Name,
			Surname:    req.Surname,
			Patronymic: req.Patronymic,
			Phone:      req.Phone,
			Role:       req.Role,
		}
		if err := s.employees.CreateTx(ctx, tx, &employee); err != nil {
			return err
		}
		user = model.User{
			Username:     req.Username,
			PasswordHash: string(hash),
			Role:         req.Role,
			EmployeeID:   &employee.ID,
		}
		return s.users.CreateTx(ctx, tx, &user)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.authResponse(&user)
}

// CheckSession re-fetches the token subject; a deleted user invalidates the
// session even though the token itself has not expired.
func (s *authService) CheckSession(ctx context.Context, userID uuid.UUID) (*dto.SessionResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return &dto.SessionResponse{Valid: true, User: userToResponse(user)}, nil
}

func (s *authService) authResponse(user *model.User) (*dto.AuthResponse, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        userToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	if user.ClientID != nil {
		claims["client_id"] = user.ClientID.String()
	}
	if user.EmployeeID != nil {
		claims["employee_id"] = user.EmployeeID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func userToResponse(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Role:     u.Role,
	}
	if u.EmployeeID != nil {
		id := u.EmployeeID.String()
		resp.EmployeeID = &id
	}
	if u.ClientID != nil {
		id := u.ClientID.String()
		resp.ClientID = &id
	}
	return resp
}
