// Package chat wires retrieval, context assembly, generation and the
// conversation history into one request/response cycle per user message.
package chat

import (
	"context"
	"strings"

	"shopchat/internal/assemble"
	"shopchat/internal/corpus"
	"shopchat/internal/history"
	"shopchat/internal/retrieve"
)

const errorPrefix = "❌ Lỗi: "

const systemPromptTemplate = `Bạn là trợ lý AI tư vấn thời trang cho cửa hàng Uqilo.
Nhiệm vụ của bạn:
- Tư vấn sản phẩm dựa trên thông tin được cung cấp
- Trả lời câu hỏi về thông tin công ty
- Gợi ý sản phẩm phù hợp với nhu cầu khách hàng

Thông tin tham khảo:
{context}

Lưu ý:
- Chỉ trả lời dựa trên thông tin được cung cấp
- Nếu không có thông tin, hãy nói rõ là không biết
- Trả lời bằng tiếng Việt, thân thiện và chuyên nghiệp`

// Retriever yields the units most relevant to a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]retrieve.Result, error)
}

// Generator produces the assistant reply from the supplied context block,
// prior turns and question.
type Generator interface {
	Generate(ctx context.Context, system string, turns []history.Turn, question string) (string, error)
}

// Orchestrator owns the conversation history and runs one full cycle per
// user message. Turns are appended only after a successful reply; a failed
// request leaves the history exactly as it was.
type Orchestrator struct {
	retriever Retriever
	generator Generator
	history   *history.History
}

func New(r Retriever, g Generator, h *history.History) *Orchestrator {
	return &Orchestrator{retriever: r, generator: g, history: h}
}

// Respond handles one user message and returns the text to render.
// Empty or whitespace-only input short-circuits to an empty reply.
// Retrieval or generation failures come back as an error-prefixed reply
// rather than a crash.
func (o *Orchestrator) Respond(ctx context.Context, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return ""
	}

	results, err := o.retriever.Retrieve(ctx, message)
	if err != nil {
		return errorPrefix + err.Error()
	}

	units := make([]corpus.Unit, 0, len(results))
	for _, r := range results {
		units = append(units, r.Unit)
	}

	system := strings.Replace(systemPromptTemplate, "{context}", assemble.FormatContext(units), 1)
	answer, err := o.generator.Generate(ctx, system, o.history.Snapshot(), message)
	if err != nil {
		return errorPrefix + err.Error()
	}

	o.history.Append(history.Turn{Role: history.RoleUser, Text: message})
	o.history.Append(history.Turn{Role: history.RoleAssistant, Text: answer})

	sources := assemble.FormatSources(units)
	if len(sources) == 0 {
		return answer
	}
	var b strings.Builder
	b.WriteString(answer)
	b.WriteString("\n\n---\n**🔍 Nguồn tham khảo:**")
	for _, s := range sources {
		b.WriteString("\n- ")
		b.WriteString(s)
	}
	return b.String()
}

// History exposes the conversation log, mainly for inspection in the UI.
func (o *Orchestrator) History() *history.History { return o.history }
