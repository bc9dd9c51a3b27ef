package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 30 * time.Minute

type Auth struct {
	operators   OperatorRepository
	shopService ShopService
	txManager   TxManager
	jwtSecret   []byte
	tokenTTL    time.Duration
}

func New(operators OperatorRepository, shopService ShopService, txManager TxManager, jwtSecret []byte, tokenTTL time.Duration) *Auth {
	return &Auth{
		operators:   operators,
		shopService: shopService,
		txManager:   txManager,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
	}
}

// Register создает оператора и его единственный магазин одной транзакцией
// и сразу выдает токен.
func (s *Auth) Register(ctx context.Context, email, password, shopName, shopCode string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !isValidEmail(email) {
		return "", ErrInvalidEmail
	}
	if len(password) < 8 {
		return "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	var operatorID int64
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		operator, err := s.operators.Create(ctx, email, hash)
		if err != nil {
			return fmt.Errorf("create operator: %w", err)
		}
		operatorID = operator.ID

		if _, err := s.shopService.CreateShop(ctx, operator.ID, shopName, shopCode); err != nil {
			return fmt.Errorf("create shop: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return s.issueToken(operatorID, "access", s.tokenTTL)
}

func (s *Auth) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	operator, err := s.operators.GetByEmail(ctx, email)
	if err != nil {
		// не раскрываем, существует ли аккаунт
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(operator.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(operator.ID, "access", s.tokenTTL)
}

// RequestPasswordReset выдает короткоживущий reset-токен.
// Доставка письма — вне этого сервиса.
func (s *Auth) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	operator, err := s.operators.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("lookup operator: %w", err)
	}

	return s.issueToken(operator.ID, "password_reset", resetTokenTTL)
}

// ResetPassword меняет пароль по reset-токену.
func (s *Auth) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	operatorID, err := s.parseToken(token, "password_reset")
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.operators.UpdatePassword(ctx, operatorID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// UpdatePassword меняет пароль авторизованного оператора с проверкой текущего.
func (s *Auth) UpdatePassword(ctx context.Context, operatorID int64, current, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	operator, err := s.operators.GetByID(ctx, operatorID)
	if err != nil {
		return fmt.Errorf("get operator: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(operator.PasswordHash, []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.operators.UpdatePassword(ctx, operatorID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *Auth) issueToken(operatorID int64, purpose string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"operator_id": operatorID,
		"purpose":     purpose,
		"iat":         now.Unix(),
		"exp":         now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Auth) parseToken(tokenString, purpose string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != purpose {
		return 0, ErrInvalidToken
	}

	operatorID, ok := claims["operator_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return int64(operatorID), nil
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
