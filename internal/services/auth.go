package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, u *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role models.Role) (string, error)
}

// WalletProvisioner opens the wallet of a newly registered agent.
type WalletProvisioner interface {
	GetOrCreateWallet(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error)
}

// RegisterInput carries an agent self-registration.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Password string `json:"password"`
}

// Validate checks the registration fields.
func (in RegisterInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.Email, validation.Required, validation.Match(emailPattern).Error("must be a valid email address")),
		validation.Field(&in.Company, validation.Length(0, 255)),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 72)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return nil
}

// AuthService handles registration and login.
type AuthService struct {
	tx      TxRunner
	reader  UserReader
	writer  UserWriter
	jwt     JWTGenerator
	wallets WalletProvisioner
	cost    int
	now     func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(tx TxRunner, reader UserReader, writer UserWriter, jwt JWTGenerator, wallets WalletProvisioner) *AuthService {
	return &AuthService{
		tx:      tx,
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		wallets: wallets,
		cost:    bcrypt.DefaultCost,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Register creates an agent account together with its empty wallet.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (*models.UserDB, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	in.Company = strings.TrimSpace(in.Company)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var user *models.UserDB
	err := svc.tx.Do(ctx, func(ctx context.Context) error {
		u, err := svc.createUser(ctx, in.Name, in.Email, in.Company, in.Password, models.RoleAgent)
		if err != nil {
			return err
		}
		if _, err := svc.wallets.GetOrCreateWallet(ctx, u.UserID); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		if !errors.Is(err, models.ErrUserAlreadyExists) {
			logger.Log.Errorw("failed to register user", "email", in.Email, "err", err)
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a JWT token carrying the user's role.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logger.Log.Infow("login for unknown email", "email", email)
			return "", models.ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", models.ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// EnsureAdmin creates the bootstrap admin account unless the email is taken. Empty email is a no-op.
func (svc *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: bootstrap admin password must be at least 8 characters", models.ErrValidation)
	}

	_, err := svc.createUser(ctx, "Administrator", email, "", password, models.RoleAdmin)
	if errors.Is(err, models.ErrUserAlreadyExists) {
		logger.Log.Infow("bootstrap admin already exists", "email", email)
		return nil
	}
	if err != nil {
		logger.Log.Errorw("failed to create bootstrap admin", "email", email, "err", err)
		return err
	}
	logger.Log.Infow("bootstrap admin created", "email", email)
	return nil
}

func (svc *AuthService) createUser(ctx context.Context, name, email, company, password string, role models.Role) (*models.UserDB, error) {
	_, err := svc.reader.GetByEmail(ctx, email)
	if err == nil {
		return nil, models.ErrUserAlreadyExists
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		return nil, err
	}

	now := svc.now()
	user := &models.UserDB{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		Company:      company,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}
