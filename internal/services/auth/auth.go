// Package auth реализует моковый вход в систему: проверку пароля
// демо-аккаунта по bcrypt-хэшу и выпуск JWT. Токен нигде не
// проверяется — авторизация в приложении не форсируется, вход лишь
// повторяет поведение исходного мокового бэкенда.
package auth

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/gym-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-aggregator/internal/lib/password"
	"github.com/magabrotheeeer/gym-aggregator/internal/mockdata"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
)

// ErrInvalidCredentials возвращается при неизвестной почте или
// неверном пароле; причина снаружи не различается.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Session — результат успешного входа.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Service проверяет демо-аккаунты из сгенерированного Store.
type Service struct {
	store *mockdata.Store
	maker jwt.Maker
	log   *slog.Logger
}

// New создаёт Service над Store и мейкером токенов.
func New(store *mockdata.Store, maker jwt.Maker, log *slog.Logger) *Service {
	return &Service{store: store, maker: maker, log: log}
}

// Login ищет активный аккаунт по почте, сверяет пароль и выпускает
// токен.
func (s *Service) Login(email, pass string) (*Session, error) {
	for _, u := range s.store.Users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if !u.Active {
			break
		}
		if err := password.CompareHash(u.PasswordHash, pass); err != nil {
			break
		}
		token, err := s.maker.GenerateToken(u.Email, u.Role)
		if err != nil {
			return nil, err
		}
		s.log.Info("demo login", slog.String("email", u.Email), slog.String("role", u.Role))
		return &Session{Token: token, User: u}, nil
	}
	return nil, ErrInvalidCredentials
}
