// services/auth_service.go
package services

import (
	"context"
	"errors"

	"kartotek.link/configs/configslog"
	"kartotek.link/models"
	"kartotek.link/repositories"
	"kartotek.link/utils"

	"go.uber.org/zap"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "kullanıcı adı veya parola hatalı"
	ErrUserAlreadyExists  AuthServiceError = "kullanıcı adı veya e-posta zaten kayıtlı"
	ErrUnauthorized       AuthServiceError = "kimlik doğrulanamadı"
	ErrInactiveUser       AuthServiceError = "hesap pasif durumda"
	ErrRegistrationFailed AuthServiceError = "kullanıcı oluşturulamadı"
)

// IAuthService kimlik doğrulama işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo repositories.IUserRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{userRepo: repositories.NewUserRepository()}
}

// NewAuthServiceWithRepo bağımlılığı dışarıdan alan constructor (testler için).
func NewAuthServiceWithRepo(userRepo repositories.IUserRepository) IAuthService {
	return &AuthService{userRepo: userRepo}
}

// Register yeni kullanıcı kaydeder. Parola bcrypt ile hash'lenir,
// asla düz metin olarak saklanmaz.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	exists, err := s.userRepo.UsernameOrEmailExists(ctx, username, email)
	if err != nil {
		configslog.Log.Error("Register: benzersizlik kontrolü başarısız", zap.Error(err))
		return nil, ErrRegistrationFailed
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		configslog.Log.Error("Register: parola hash'lenemedi", zap.Error(err))
		return nil, ErrRegistrationFailed
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		HashedPassword: hash,
		IsActive:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		configslog.Log.Error("Register: kullanıcı oluşturulamadı", zap.String("username", username), zap.Error(err))
		return nil, ErrRegistrationFailed
	}

	configslog.SLog.Infof("Yeni kullanıcı kaydedildi: %s (ID: %d)", user.Username, user.ID)
	return user, nil
}

// Login kullanıcı adı/parola doğrulaması yapar ve erişim token'ı üretir.
// Kullanıcının var olmaması ile parolanın yanlış olması aynı hatayı döndürür.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		configslog.Log.Error("Login: kullanıcı sorgusu başarısız", zap.String("username", username), zap.Error(err))
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}

	token, err := utils.CreateAccessToken(user.Username)
	if err != nil {
		configslog.Log.Error("Login: token üretilemedi", zap.String("username", username), zap.Error(err))
		return "", err
	}
	return token, nil
}

// GetUserFromToken token'ı doğrular ve subject'teki kullanıcıyı yükler.
// Token geçersizse, süresi dolmuşsa veya kullanıcı yoksa ErrUnauthorized döner.
func (s *AuthService) GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	username, err := utils.ParseAccessToken(tokenString)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		configslog.Log.Error("GetUserFromToken: kullanıcı sorgusu başarısız", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
