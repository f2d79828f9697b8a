package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/hiresphere/api/internal/database"
	"github.com/hiresphere/api/internal/model"
	"github.com/hiresphere/api/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// Password constraints
	minPasswordLength = 8
	maxPasswordLength = 128
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CompanyRepository defines the interface for company storage
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id string) (*model.Company, error)
	GetByEmail(ctx context.Context, email string) (*model.Company, error)
}

// TokenService defines the interface for credential signing and verification
type TokenService interface {
	Sign(subject string, kind token.Kind) (string, error)
	Verify(tokenString string) (*token.Claims, error)
}

// AuthService handles company authentication and credential resolution
type AuthService struct {
	companyRepo CompanyRepository
	tokens      TokenService
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	CompanyRepo CompanyRepository
	Tokens      TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		companyRepo: cfg.CompanyRepo,
		tokens:      cfg.Tokens,
	}
}

// RegisterRequest represents a company registration request
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Image    string
}

// AuthResult represents a successful registration or login
type AuthResult struct {
	Company    *model.Company
	Credential string
}

// Register creates a new company account with email/password
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	// Fast-path duplicate check; the unique email index is authoritative
	// under concurrent registrations.
	existing, err := s.companyRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	company := &model.Company{
		Name:  name,
		Email: email,
		Hash:  string(hash),
		Image: req.Image,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	credential, err := s.tokens.Sign(company.ID, token.KindCompany)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Company: company, Credential: credential}, nil
}

// LoginRequest represents a company login request
type LoginRequest struct {
	Email    string
	Password string
}

// Login authenticates a company with email/password
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	company, err := s.companyRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(company.Hash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	credential, err := s.tokens.Sign(company.ID, token.KindCompany)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Company: company, Credential: credential}, nil
}

// ResolveCompany verifies a bearer credential and loads the company it
// references. A malformed or expired token yields ErrInvalidCredential;
// a valid token whose company no longer exists yields ErrUnknownPrincipal.
func (s *AuthService) ResolveCompany(ctx context.Context, credential string) (*model.Company, error) {
	claims, err := s.tokens.Verify(credential)
	if err != nil {
		return nil, ErrInvalidCredential
	}
	if claims.Kind != token.KindCompany || claims.Subject == "" {
		return nil, ErrInvalidCredential
	}

	company, err := s.companyRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrUnknownPrincipal
	}
	return company, nil
}

// ResolveApplicant verifies a bearer credential carrying an applicant
// identity and returns the applicant subject id. The applicant record itself
// may not exist locally yet: the identity directory is synced asynchronously
// and can lag behind the provider.
func (s *AuthService) ResolveApplicant(credential string) (string, error) {
	claims, err := s.tokens.Verify(credential)
	if err != nil {
		return "", ErrInvalidCredential
	}
	if claims.Kind != token.KindApplicant || claims.Subject == "" {
		return "", ErrInvalidCredential
	}
	return claims.Subject, nil
}

// GetCompanyByID retrieves a company by ID
func (s *AuthService) GetCompanyByID(ctx context.Context, id string) (*model.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return ErrPasswordRequired
	case len(password) < minPasswordLength:
		return ErrPasswordTooShort
	case len(password) > maxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}
