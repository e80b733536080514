// Package plan реализует CRUD тарифных планов поверх key-value
// хранилища. Сервис повторяет семантику исходного планового сервиса:
// запись целиком перекрывает прежний список, последняя запись
// побеждает, транзакций нет.
package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-aggregator/internal/mockdata"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
	"github.com/magabrotheeeer/gym-aggregator/internal/storage/kv"
)

// storageKey — ключ списка тарифов в хранилище.
const storageKey = "gymapp:plans"

// Типизированные ошибки CRUD; обработчики переводят их в коды конверта.
var (
	ErrNotFound  = errors.New("plan not found")
	ErrDuplicate = errors.New("plan with this name already exists")
)

// Service управляет каталогом тарифов.
type Service struct {
	store kv.Store
	log   *slog.Logger
}

// New создаёт Service и засевает хранилище каталогом по умолчанию,
// если тарифов там ещё нет.
func New(ctx context.Context, store kv.Store, log *slog.Logger) (*Service, error) {
	const op = "plan.New"
	s := &Service{store: store, log: log}

	plans, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(plans) == 0 {
		if err := s.store.Save(ctx, storageKey, mockdata.DefaultPlans()); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Info("seeded default plan catalog", slog.Int("count", len(mockdata.DefaultPlans())))
	}
	return s, nil
}

// List возвращает все тарифы.
func (s *Service) List(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.store.List(ctx, storageKey, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Read возвращает тариф по идентификатору.
func (s *Service) Read(ctx context.Context, id string) (*models.Plan, error) {
	plans, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create добавляет тариф и возвращает его идентификатор. Название
// уникально без учёта регистра.
func (s *Service) Create(ctx context.Context, req models.DummyPlan) (string, error) {
	plans, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range plans {
		if strings.EqualFold(p.Name, req.Name) {
			return "", ErrDuplicate
		}
	}

	plan := models.Plan{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Price:    req.Price,
		Duration: req.Duration,
		Active:   true,
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}

	if err := s.store.Save(ctx, storageKey, append(plans, plan)); err != nil {
		return "", err
	}
	s.log.Info("created plan", slog.String("id", plan.ID), slog.String("name", plan.Name))
	return plan.ID, nil
}

// Update заменяет данные тарифа по идентификатору.
func (s *Service) Update(ctx context.Context, id string, req models.DummyPlan) error {
	plans, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range plans {
		if plans[i].ID != id {
			continue
		}
		for j := range plans {
			if j != i && strings.EqualFold(plans[j].Name, req.Name) {
				return ErrDuplicate
			}
		}
		plans[i].Name = req.Name
		plans[i].Price = req.Price
		plans[i].Duration = req.Duration
		if req.Active != nil {
			plans[i].Active = *req.Active
		}
		if err := s.store.Save(ctx, storageKey, plans); err != nil {
			return err
		}
		s.log.Info("updated plan", slog.String("id", id))
		return nil
	}
	return ErrNotFound
}

// Remove удаляет тариф по идентификатору.
func (s *Service) Remove(ctx context.Context, id string) error {
	plans, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range plans {
		if plans[i].ID == id {
			next := append(plans[:i:i], plans[i+1:]...)
			if err := s.store.Save(ctx, storageKey, next); err != nil {
				return err
			}
			s.log.Info("removed plan", slog.String("id", id))
			return nil
		}
	}
	return ErrNotFound
}
