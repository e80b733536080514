// Package login реализует HTTP-обработчик мокового входа в систему.
//
// Handler принимает почту и пароль демо-аккаунта, проверяет их через
// сервис авторизации и возвращает JWT. Токен нигде не проверяется —
// авторизация в приложении не форсируется.
package login

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/gym-aggregator/internal/http/response"
	"github.com/magabrotheeeer/gym-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/gym-aggregator/internal/services/auth"
)

// Request — учётные данные демо-аккаунта.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Handler управляет HTTP-запросами на вход.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс моковой авторизации.
type Service interface {
	Login(email, password string) (*auth.Session, error)
}

// New создаёт Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Моковый вход в систему
// @Description Проверяет демо-аккаунт и возвращает JWT. Токен декоративный, авторизация не форсируется.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Учетные данные демо-аккаунта"
// @Success 200 {object} response.Response "Токен и данные пользователя"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 401 {object} response.Response "Неверные учетные данные"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	session, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "invalid credentials"))
		return
	}

	log.Info("login success", slog.String("email", req.Email))
	render.JSON(w, r, response.OK(session, "login successful"))
}
