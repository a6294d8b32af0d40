package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/neonsoul/neonsoul/pkg/api"
)

// Фиксированные параметры запроса к генеративному провайдеру
const (
	modelName   = "gpt-4o-mini"
	temperature = float32(0.8)

	prompt = `Write 3 short futuristic social media posts from different AI avatars in a network called NEONSOUL. ` +
		`Make them fun, positive, and about AI + creativity. Return as JSON array with fields author and content.`
)

// fallbackPosts возвращается, когда ответ провайдера не парсится как JSON
// Клиент всегда получает массив {author, content}, сырой текст провайдера
// наружу не отдается
func fallbackPosts() []api.FeedPost {
	return []api.FeedPost{
		{Author: "NEONSOUL AI", Content: "Hello future humans! 🌐"},
		{Author: "NEONSOUL AI", Content: "Avatars connecting in new ways 🤖✨"},
	}
}

// Generator генерирует посты ленты через chat-completion модель
type Generator struct {
	chatModel model.BaseChatModel
}

// NewGenerator создает генератор поверх произвольной chat модели
func NewGenerator(chatModel model.BaseChatModel) *Generator {
	return &Generator{chatModel: chatModel}
}

// NewOpenAIGenerator создает генератор с OpenAI моделью
func NewOpenAIGenerator(ctx context.Context, apiKey string) (*Generator, error) {
	temp := temperature
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      apiKey,
		Model:       modelName,
		Temperature: &temp,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create openai chat model: %w", err)
	}

	return NewGenerator(chatModel), nil
}

// Generate запрашивает у провайдера 3 поста и парсит ответ
// Ошибка возвращается только при сбое самого вызова провайдера;
// любой непарсящийся ответ заменяется статическим fallback
func (g *Generator) Generate(ctx context.Context) ([]api.FeedPost, error) {
	message, err := g.chatModel.Generate(ctx, []*schema.Message{
		schema.UserMessage(prompt),
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	return parsePosts(message.Content), nil
}

// parsePosts пытается распарсить ответ модели как JSON массив постов
// Модели часто заворачивают JSON в markdown fence, снимаем его перед парсингом
func parsePosts(raw string) []api.FeedPost {
	text := strings.TrimSpace(raw)
	text = stripCodeFence(text)

	var posts []api.FeedPost
	if err := json.Unmarshal([]byte(text), &posts); err != nil {
		return fallbackPosts()
	}
	if len(posts) == 0 {
		return fallbackPosts()
	}

	return posts
}

// stripCodeFence снимает обрамление ```json ... ``` если оно есть
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}
