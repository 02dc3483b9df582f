package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopchat/internal/corpus"
	"shopchat/internal/history"
	"shopchat/internal/retrieve"
)

type stubRetriever struct {
	results []retrieve.Result
	err     error
	calls   int
}

func (s *stubRetriever) Retrieve(ctx context.Context, query string) ([]retrieve.Result, error) {
	s.calls++
	return s.results, s.err
}

type stubGenerator struct {
	reply       string
	err         error
	gotSystem   string
	gotTurns    []history.Turn
	gotQuestion string
}

func (s *stubGenerator) Generate(ctx context.Context, system string, turns []history.Turn, question string) (string, error) {
	s.gotSystem = system
	s.gotTurns = turns
	s.gotQuestion = question
	return s.reply, s.err
}

func redShirtResult() retrieve.Result {
	return retrieve.Result{
		Unit: corpus.Unit{
			Kind:    corpus.KindProduct,
			Source:  "products.csv",
			Content: "Sản phẩm: Áo thun đỏ",
			Product: &corpus.Product{
				ID: "SP001", Name: "Áo thun đỏ", Color: "đỏ",
				Size: "M", Price: 250000, Stock: 12, Rating: 4.5,
			},
		},
		Similarity: 0.9,
	}
}

func TestRespondEmptyInputShortCircuits(t *testing.T) {
	r := &stubRetriever{}
	o := New(r, &stubGenerator{reply: "x"}, history.New(10))

	assert.Equal(t, "", o.Respond(context.Background(), ""))
	assert.Equal(t, "", o.Respond(context.Background(), "   \t"))
	assert.Equal(t, 0, r.calls, "empty input bypasses retrieval entirely")
	assert.Equal(t, 0, o.History().Len())
}

func TestRespondRetrievalFailure(t *testing.T) {
	o := New(&stubRetriever{err: errors.New("store offline")}, &stubGenerator{}, history.New(10))

	reply := o.Respond(context.Background(), "áo đỏ")
	assert.True(t, strings.HasPrefix(reply, "❌ Lỗi:"), "failures surface as an error-prefixed reply")
	assert.Contains(t, reply, "store offline")
	assert.Equal(t, 0, o.History().Len(), "history untouched on failure")
}

func TestRespondGenerationFailure(t *testing.T) {
	o := New(&stubRetriever{results: []retrieve.Result{redShirtResult()}},
		&stubGenerator{err: errors.New("model overloaded")}, history.New(10))

	reply := o.Respond(context.Background(), "áo đỏ")
	assert.True(t, strings.HasPrefix(reply, "❌ Lỗi:"))
	assert.Equal(t, 0, o.History().Len(), "the failed turn is never appended")
}

func TestRespondSuccess(t *testing.T) {
	g := &stubGenerator{reply: "Shop có Áo thun đỏ giá 250000đ ạ."}
	o := New(&stubRetriever{results: []retrieve.Result{redShirtResult(), redShirtResult()}}, g, history.New(10))

	reply := o.Respond(context.Background(), "Áo màu đỏ dưới 300k")

	assert.Contains(t, g.gotSystem, "Sản phẩm: Áo thun đỏ", "retrieved context is embedded in the system prompt")
	assert.Contains(t, g.gotSystem, "- Giá: 250000đ")
	assert.NotContains(t, g.gotSystem, "{context}")
	assert.Empty(t, g.gotTurns, "first request sees no prior history")
	assert.Equal(t, "Áo màu đỏ dưới 300k", g.gotQuestion)

	assert.Contains(t, reply, g.reply)
	assert.Contains(t, reply, "\n\n---\n**🔍 Nguồn tham khảo:**")
	assert.Equal(t, 1, strings.Count(reply, "🛍️"), "duplicate retrievals cite once")

	require.Equal(t, 2, o.History().Len())
	turns := o.History().Snapshot()
	assert.Equal(t, history.RoleUser, turns[0].Role)
	assert.Equal(t, "Áo màu đỏ dưới 300k", turns[0].Text)
	assert.Equal(t, history.RoleAssistant, turns[1].Role)
	assert.Equal(t, g.reply, turns[1].Text, "history stores the answer without the citation block")
}

func TestRespondPassesPriorHistory(t *testing.T) {
	g := &stubGenerator{reply: "vâng ạ"}
	o := New(&stubRetriever{}, g, history.New(10))

	o.Respond(context.Background(), "câu một")
	o.Respond(context.Background(), "câu hai")

	require.Len(t, g.gotTurns, 2)
	assert.Equal(t, "câu một", g.gotTurns[0].Text)
	assert.Equal(t, "vâng ạ", g.gotTurns[1].Text)
}

func TestRespondHistoryWindow(t *testing.T) {
	g := &stubGenerator{reply: "ok"}
	o := New(&stubRetriever{}, g, history.New(4))

	for i := 0; i < 5; i++ {
		o.Respond(context.Background(), fmt.Sprintf("câu %d", i))
	}

	require.Equal(t, 4, o.History().Len())
	assert.Equal(t, "câu 3", o.History().Snapshot()[0].Text)
}

func TestRespondNoSourcesNoCitationBlock(t *testing.T) {
	o := New(&stubRetriever{}, &stubGenerator{reply: "không rõ ạ"}, history.New(10))

	reply := o.Respond(context.Background(), "thời tiết thế nào")
	assert.Equal(t, "không rõ ạ", reply)
}
