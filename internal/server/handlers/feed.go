package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/neonsoul/neonsoul/pkg/api"
)

// FeedGenerator порождает посты ленты
// Реализуется internal/server/feed.Generator
type FeedGenerator interface {
	Generate(ctx context.Context) ([]api.FeedPost, error)
}

// FeedHandler обрабатывает запросы ленты
type FeedHandler struct {
	logger    *slog.Logger
	generator FeedGenerator
}

// NewFeedHandler создает новый handler для ленты
func NewFeedHandler(logger *slog.Logger, generator FeedGenerator) *FeedHandler {
	return &FeedHandler{
		logger:    logger,
		generator: generator,
	}
}

// Feed обрабатывает GET /api/feed
// Посты генерируются заново на каждый запрос и нигде не кешируются
func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.generator.Generate(ctx)
	if err != nil {
		// Сбой провайдера или сети: единственный 500 в этом API
		h.logger.ErrorContext(ctx, "feed generation failed", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "feed generated", slog.Int("posts", len(posts)))

	h.sendJSON(w, posts, http.StatusOK)
}

// sendJSON отправляет JSON ответ
func (h *FeedHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *FeedHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{Error: message}, statusCode)
}
