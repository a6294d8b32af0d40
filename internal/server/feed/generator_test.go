package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonsoul/neonsoul/pkg/api"
)

// stubChatModel is a stub implementation of model.BaseChatModel for testing
type stubChatModel struct {
	reply string
	err   error

	gotMessages []*schema.Message
}

func (s *stubChatModel) Generate(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	s.gotMessages = in
	if s.err != nil {
		return nil, s.err
	}
	return schema.AssistantMessage(s.reply, nil), nil
}

func (s *stubChatModel) Stream(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

func TestGenerator_Generate_ValidJSON(t *testing.T) {
	stub := &stubChatModel{
		reply: `[{"author":"A","content":"x"},{"author":"B","content":"y"},{"author":"C","content":"z"}]`,
	}
	g := NewGenerator(stub)

	posts, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []api.FeedPost{
		{Author: "A", Content: "x"},
		{Author: "B", Content: "y"},
		{Author: "C", Content: "z"},
	}, posts)

	// Модели уходит ровно одно user сообщение с фиксированным промптом
	require.Len(t, stub.gotMessages, 1)
	assert.Equal(t, schema.User, stub.gotMessages[0].Role)
	assert.Equal(t, prompt, stub.gotMessages[0].Content)
}

func TestGenerator_Generate_NonJSONFallsBack(t *testing.T) {
	stub := &stubChatModel{reply: "sorry, I can't help"}
	g := NewGenerator(stub)

	posts, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fallbackPosts(), posts)
}

func TestGenerator_Generate_ProviderError(t *testing.T) {
	stub := &stubChatModel{err: errors.New("upstream unavailable")}
	g := NewGenerator(stub)

	_, err := g.Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestParsePosts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []api.FeedPost
	}{
		{
			name: "plain json array",
			raw:  `[{"author":"A","content":"x"}]`,
			want: []api.FeedPost{{Author: "A", Content: "x"}},
		},
		{
			name: "json wrapped in markdown fence",
			raw:  "```json\n[{\"author\":\"A\",\"content\":\"x\"}]\n```",
			want: []api.FeedPost{{Author: "A", Content: "x"}},
		},
		{
			name: "fence without language tag",
			raw:  "```\n[{\"author\":\"A\",\"content\":\"x\"}]\n```",
			want: []api.FeedPost{{Author: "A", Content: "x"}},
		},
		{
			name: "surrounding whitespace",
			raw:  "\n  [{\"author\":\"A\",\"content\":\"x\"}]  \n",
			want: []api.FeedPost{{Author: "A", Content: "x"}},
		},
		{
			name: "free text",
			raw:  "sorry, I can't help",
			want: fallbackPosts(),
		},
		{
			name: "json object instead of array",
			raw:  `{"author":"A","content":"x"}`,
			want: fallbackPosts(),
		},
		{
			name: "empty array",
			raw:  `[]`,
			want: fallbackPosts(),
		},
		{
			name: "empty string",
			raw:  "",
			want: fallbackPosts(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePosts(tt.raw))
		})
	}
}

func TestFallbackPosts(t *testing.T) {
	posts := fallbackPosts()
	require.Len(t, posts, 2)
	assert.Equal(t, api.FeedPost{Author: "NEONSOUL AI", Content: "Hello future humans! 🌐"}, posts[0])
	assert.Equal(t, api.FeedPost{Author: "NEONSOUL AI", Content: "Avatars connecting in new ways 🤖✨"}, posts[1])
}
