// Package assemble renders retrieved units into the context block handed
// to the generation call and into the citation list shown to the user.
// Both are pure transformations over the ranked retrieval output.
package assemble

import (
	"fmt"
	"strconv"
	"strings"

	"shopchat/internal/corpus"
)

const paragraphSep = "\n\n---\n"

// FormatContext renders one paragraph per unit. Product units become a
// structured card so the model can answer from exact fields; document
// fragments are prefixed with their source.
func FormatContext(units []corpus.Unit) string {
	if len(units) == 0 {
		return ""
	}
	parts := make([]string, 0, len(units))
	for _, u := range units {
		if u.Kind == corpus.KindProduct && u.Product != nil {
			p := u.Product
			parts = append(parts, fmt.Sprintf(
				"Sản phẩm: %s\n"+
					"- Giá: %dđ\n"+
					"- Màu: %s\n"+
					"- Size: %s\n"+
					"- Tồn kho: %d\n"+
					"- Đánh giá: %s\n"+
					"- Mô tả: %s",
				p.Name, p.Price, p.Color, p.Size, p.Stock, formatRating(p.Rating), u.Content))
		} else {
			parts = append(parts, fmt.Sprintf("Tài liệu (%s): %s", sourceOrUnknown(u), u.Content))
		}
	}
	return strings.Join(parts, paragraphSep)
}

// FormatSources builds the deduplicated citation list. Overlapping
// fragments of one document and repeated rows of one product collapse to
// a single citation; first-seen order is kept so citations follow the
// retrieval ranking.
func FormatSources(units []corpus.Unit) []string {
	seen := make(map[string]struct{}, len(units))
	var out []string
	for _, u := range units {
		var s string
		if u.Kind == corpus.KindProduct && u.Product != nil {
			p := u.Product
			s = fmt.Sprintf("🛍️ %s | %sđ | %s | Size %s | Tồn: %d",
				p.Name, groupThousands(p.Price), p.Color, p.Size, p.Stock)
		} else {
			s = "📄 " + sourceOrUnknown(u)
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func sourceOrUnknown(u corpus.Unit) string {
	if u.Source == "" {
		return "unknown"
	}
	return u.Source
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// groupThousands renders 1200000 as "1,200,000".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
