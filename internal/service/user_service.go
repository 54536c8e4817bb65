package service

import (
	"errors"
	"fmt"

	"crowdfunding/internal/model"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/mysql"
	"crowdfunding/internal/repository/redis"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidToken  = errors.New("invalid activation link")
	ErrExpiredToken  = errors.New("activation link has expired, please request a new one")
	ErrAlreadyActive = errors.New("account is already activated")
	ErrNotActivated  = errors.New("account is not activated")
	ErrWrongPassword = errors.New("password is incorrect")
)

// ResendMaskedMessage 对不存在的邮箱也返回同样的成功文案，避免探测注册邮箱
const ResendMaskedMessage = "If your email exists in our system, you will receive an activation link."

// Mailer 邮件发送出口，便于测试替换
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type smtpMailer struct {
	cfg pkg.SMTPConfig
}

func (m smtpMailer) Send(to, subject, htmlBody string) error {
	return pkg.SendEmail(m.cfg, to, subject, htmlBody)
}

type RegisterInput struct {
	Username        string
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	MobilePhone     string
	ProfilePicture  string
}

type UserService struct {
	repo        *mysql.UserRepository
	tokens      *mysql.ActivationTokenRepository
	sessions    *redis.SessionRepository
	mail        Mailer
	frontendURL string
}

func NewUserService(smtp pkg.SMTPConfig, frontendURL string) *UserService {
	return &UserService{
		repo:        &mysql.UserRepository{},
		tokens:      &mysql.ActivationTokenRepository{},
		sessions:    &redis.SessionRepository{},
		mail:        smtpMailer{cfg: smtp},
		frontendURL: frontendURL,
	}
}

// Register 创建未激活用户并发送激活邮件
func (s *UserService) Register(in RegisterInput) error {
	errs := pkg.RunChecks(
		pkg.FieldCheck{Field: "username", Check: func() string { return pkg.CheckRequired(in.Username) }},
		pkg.FieldCheck{Field: "first_name", Check: func() string { return pkg.CheckRequired(in.FirstName) }},
		pkg.FieldCheck{Field: "last_name", Check: func() string { return pkg.CheckRequired(in.LastName) }},
		pkg.FieldCheck{Field: "email", Check: func() string { return pkg.CheckRequired(in.Email) }},
		pkg.FieldCheck{Field: "mobile_phone", Check: func() string { return pkg.CheckMobilePhone(in.MobilePhone) }},
		pkg.FieldCheck{Field: "confirm_password", Check: func() string { return pkg.CheckPasswordConfirm(in.Password, in.ConfirmPassword) }},
	)
	if errs.Has() {
		return errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:       in.Username,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Password:       string(hash),
		MobilePhone:    in.MobilePhone,
		ProfilePicture: in.ProfilePicture,
		IsActive:       false,
	}
	if err = s.repo.Create(user); err != nil {
		return err
	}

	return s.issueActivation(user)
}

// issueActivation 生成令牌并发激活邮件，注册与重发共用
func (s *UserService) issueActivation(user *model.User) error {
	token := &model.ActivationToken{
		UserID: user.ID,
		Token:  uuid.NewString(),
	}
	if err := s.tokens.Create(token); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/activate/%s", s.frontendURL, token.Token)
	html := pkg.ActivationEmailHTML(user.FirstName, link, 24)
	return s.mail.Send(user.Email, "Activate Your Account", html)
}

// Activate 消费激活令牌：无效/过期报错，成功后令牌即删，二次使用按无效处理
func (s *UserService) Activate(tokenStr string) error {
	token, err := s.tokens.FindByToken(tokenStr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	if !token.IsValid() {
		// 过期令牌保留，等待 resend 覆盖
		return ErrExpiredToken
	}

	user, err := s.repo.FindByID(token.UserID)
	if err != nil {
		return err
	}
	if err = s.repo.Activate(user); err != nil {
		return err
	}
	return s.tokens.Delete(token)
}

// ResendActivation 重发激活邮件；邮箱不存在时返回掩码文案而非错误
func (s *UserService) ResendActivation(email string) (string, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResendMaskedMessage, nil
		}
		return "", err
	}

	if user.IsActive {
		return "", ErrAlreadyActive
	}

	if err = s.tokens.DeleteByUser(user.ID); err != nil {
		return "", err
	}
	if err = s.issueActivation(user); err != nil {
		return "", err
	}
	return "Activation email has been sent. Please check your email.", nil
}

// Login 邮箱+密码换令牌对，未激活账号拒绝登录
func (s *UserService) Login(email, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrWrongPassword
	}

	if !user.IsActive {
		return nil, ErrNotActivated
	}

	pair, err := pkg.GeneratePair(user.ID, user.IsStaff)
	if err != nil {
		return nil, err
	}
	if err = s.sessions.Store(user.ID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

func (s *UserService) Logout(userID uint64) error {
	return s.sessions.Delete(userID)
}

// DeleteAccount 注销账号，需要验证当前密码
func (s *UserService) DeleteAccount(userID uint64, currentPassword string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return ErrWrongPassword
	}

	if err = s.repo.Delete(userID); err != nil {
		return err
	}
	return s.sessions.Delete(userID)
}
