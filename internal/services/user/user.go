// Package user реализует CRUD пользователей поверх key-value хранилища.
// При первом запуске список засевается демо-пользователями из
// сгенерированного Store, чтобы экраны администратора не были пустыми.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-aggregator/internal/models"
	"github.com/magabrotheeeer/gym-aggregator/internal/storage/kv"
)

// storageKey — ключ списка пользователей в хранилище.
const storageKey = "gymapp:users"

// Типизированные ошибки CRUD; обработчики переводят их в коды конверта.
var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("user with this email already exists")
)

// Service управляет списком пользователей.
type Service struct {
	store kv.Store
	log   *slog.Logger
}

// New создаёт Service и засевает хранилище переданными демо-записями,
// если пользователей там ещё нет.
func New(ctx context.Context, store kv.Store, seed []models.User, log *slog.Logger) (*Service, error) {
	const op = "user.New"
	s := &Service{store: store, log: log}

	users, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(users) == 0 && len(seed) > 0 {
		if err := s.store.Save(ctx, storageKey, seed); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Info("seeded demo users", slog.Int("count", len(seed)))
	}
	return s, nil
}

// List возвращает всех пользователей.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.store.List(ctx, storageKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Read возвращает пользователя по идентификатору.
func (s *Service) Read(ctx context.Context, id string) (*models.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create добавляет пользователя и возвращает его идентификатор.
// Email уникален без учёта регистра.
func (s *Service) Create(ctx context.Context, req models.DummyUser) (string, error) {
	users, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, req.Email) {
			return "", ErrDuplicate
		}
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.store.Save(ctx, storageKey, append(users, user)); err != nil {
		return "", err
	}
	s.log.Info("created user", slog.String("id", user.ID), slog.String("email", user.Email))
	return user.ID, nil
}

// Update заменяет данные пользователя по идентификатору.
func (s *Service) Update(ctx context.Context, id string, req models.DummyUser) error {
	users, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		for j := range users {
			if j != i && strings.EqualFold(users[j].Email, req.Email) {
				return ErrDuplicate
			}
		}
		users[i].Name = req.Name
		users[i].Email = req.Email
		users[i].Role = req.Role
		if req.Active != nil {
			users[i].Active = *req.Active
		}
		if err := s.store.Save(ctx, storageKey, users); err != nil {
			return err
		}
		s.log.Info("updated user", slog.String("id", id))
		return nil
	}
	return ErrNotFound
}

// Remove удаляет пользователя по идентификатору.
func (s *Service) Remove(ctx context.Context, id string) error {
	users, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			next := append(users[:i:i], users[i+1:]...)
			if err := s.store.Save(ctx, storageKey, next); err != nil {
				return err
			}
			s.log.Info("removed user", slog.String("id", id))
			return nil
		}
	}
	return ErrNotFound
}
