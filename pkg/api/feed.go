package api

// FeedPost представляет один сгенерированный пост ленты
// Эндпоинт /api/feed возвращает массив таких постов
type FeedPost struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}
