package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopchat/internal/corpus"
)

func redShirt() corpus.Unit {
	return corpus.Unit{
		Kind:    corpus.KindProduct,
		Source:  "products.csv",
		Content: "Sản phẩm: Áo thun đỏ\nMô tả: Áo thun cotton",
		Product: &corpus.Product{
			ID: "SP001", Name: "Áo thun đỏ", Category: "áo thun",
			Color: "đỏ", Size: "M", Price: 250000, Stock: 12, Rating: 4.5,
		},
	}
}

func fragment(source, content string) corpus.Unit {
	return corpus.Unit{Kind: corpus.KindDocument, Source: source, Content: content}
}

func TestFormatContextProductCard(t *testing.T) {
	got := FormatContext([]corpus.Unit{redShirt()})

	assert.Contains(t, got, "Sản phẩm: Áo thun đỏ")
	assert.Contains(t, got, "- Giá: 250000đ")
	assert.Contains(t, got, "- Màu: đỏ")
	assert.Contains(t, got, "- Size: M")
	assert.Contains(t, got, "- Tồn kho: 12")
	assert.Contains(t, got, "- Đánh giá: 4.5")
	assert.Contains(t, got, "- Mô tả: Sản phẩm: Áo thun đỏ")
}

func TestFormatContextDocumentAndSeparator(t *testing.T) {
	got := FormatContext([]corpus.Unit{
		fragment("policy.txt", "Đổi trả trong 30 ngày."),
		redShirt(),
	})

	assert.Contains(t, got, "Tài liệu (policy.txt): Đổi trả trong 30 ngày.")
	assert.Contains(t, got, "\n\n---\n", "paragraphs joined with the context delimiter")
}

func TestFormatContextEmpty(t *testing.T) {
	assert.Equal(t, "", FormatContext(nil))
}

func TestFormatSourcesDeduplicates(t *testing.T) {
	// five retrieved fragments spanning only two distinct sources
	units := []corpus.Unit{
		fragment("policy.txt", "phần 1"),
		redShirt(),
		fragment("policy.txt", "phần 2"),
		redShirt(),
		fragment("policy.txt", "phần 3"),
	}

	sources := FormatSources(units)
	require.Len(t, sources, 2)
	assert.Equal(t, "📄 policy.txt", sources[0])
	assert.Equal(t, "🛍️ Áo thun đỏ | 250,000đ | đỏ | Size M | Tồn: 12", sources[1])
}

func TestFormatSourcesUnknownSource(t *testing.T) {
	sources := FormatSources([]corpus.Unit{{Kind: corpus.KindDocument, Content: "x"}})
	require.Len(t, sources, 1)
	assert.Equal(t, "📄 unknown", sources[0])
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "250,000", groupThousands(250000))
	assert.Equal(t, "1,200,000", groupThousands(1200000))
}
