package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/neonsoul/neonsoul/internal/models"
	"github.com/neonsoul/neonsoul/internal/server/storage"
	"github.com/neonsoul/neonsoul/pkg/api"
)

// AvatarHandler обрабатывает запросы на обновление аватара
type AvatarHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	jwtConfig   JWTConfig
}

// NewAvatarHandler создает новый handler для аватаров
func NewAvatarHandler(logger *slog.Logger, userStorage storage.UserStorage, jwtConfig JWTConfig) *AvatarHandler {
	return &AvatarHandler{
		logger:      logger,
		userStorage: userStorage,
		jwtConfig:   jwtConfig,
	}
}

// CreateAvatar обрабатывает POST /api/avatar
// Токен приходит в теле запроса; аватар перезаписывается целиком
func (h *AvatarHandler) CreateAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.AvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode avatar request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем токен
	claims, err := ValidateAccessToken(h.jwtConfig, req.Token)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	avatar := &models.Avatar{
		Name:        req.Name,
		Personality: req.Personality,
	}

	// Обновляем аватар по id из токена
	// Токен валиден, но пользователь мог исчезнуть: это отдельная ошибка,
	// не смешиваемая с ошибкой проверки токена
	if err := h.userStorage.UpdateAvatar(ctx, claims.UserID, avatar); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "avatar update: user not found", slog.String("user_id", claims.UserID))
			h.sendError(w, "user not found", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update avatar", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.InfoContext(ctx, "avatar updated",
		slog.String("user_id", claims.UserID),
		slog.String("avatar_name", req.Name))

	resp := api.AvatarResponse{
		Name:        avatar.Name,
		Personality: avatar.Personality,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// sendJSON отправляет JSON ответ
func (h *AvatarHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *AvatarHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{Error: message}, statusCode)
}
