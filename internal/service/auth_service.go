package service

import (
	"errors"
	"time"

	"vendor_risk_backend/internal/config"
	"vendor_risk_backend/internal/model"
	"vendor_risk_backend/internal/repository"
	"vendor_risk_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Mail     *MailService
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, mail *MailService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Mail:     mail,
		Cfg:      cfg,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Role        model.UserRole
	CompanyName string
}

// Register creates the user under an existing company of the same name,
// or creates the company first. The account stays locked until the
// verification link is clicked.
func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(input.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	company, err := s.UserRepo.FindCompanyByName(input.CompanyName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		company = &model.Company{Name: input.CompanyName}
		if err := s.UserRepo.CreateCompany(company); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = model.ProcurementManager
	}

	token := uuid.New().String()
	expires := time.Now().Add(24 * time.Hour)
	user := &model.User{
		Email:                    input.Email,
		Password:                 string(hashedPassword),
		FirstName:                input.FirstName,
		LastName:                 input.LastName,
		Role:                     role,
		CompanyID:                company.ID,
		EmailVerificationToken:   token,
		EmailVerificationExpires: &expires,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	go s.Mail.SendVerificationEmail(user.Email, user.FirstName, token)
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if !user.IsEmailVerified {
		return "", nil, util.ErrEmailNotVerified
	}

	s.UserRepo.UpdateLastLogin(user.ID)

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) VerifyEmail(token string) error {
	user, err := s.UserRepo.FindByVerificationToken(token)
	if err != nil {
		return util.ErrInvalidToken
	}
	if user.EmailVerificationExpires == nil || user.EmailVerificationExpires.Before(time.Now()) {
		return util.ErrInvalidToken
	}

	user.IsEmailVerified = true
	user.EmailVerificationToken = ""
	user.EmailVerificationExpires = nil
	return s.UserRepo.Update(user)
}

// ForgotPassword always succeeds from the caller's perspective so the
// endpoint cannot be used to probe which emails are registered.
func (s *AuthService) ForgotPassword(email string) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return
	}

	token := uuid.New().String()
	expires := time.Now().Add(time.Hour)
	user.PasswordResetToken = token
	user.PasswordResetExpires = &expires
	if err := s.UserRepo.Update(user); err != nil {
		return
	}

	go s.Mail.SendPasswordResetEmail(user.Email, user.FirstName, token)
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	user, err := s.UserRepo.FindByResetToken(token)
	if err != nil {
		return util.ErrInvalidToken
	}
	if user.PasswordResetExpires == nil || user.PasswordResetExpires.Before(time.Now()) {
		return util.ErrInvalidToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashedPassword)
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil
	return s.UserRepo.Update(user)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
