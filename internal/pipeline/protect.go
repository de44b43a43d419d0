package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder sentinels use Unicode Private Use Area characters, one per
// category, so a placeholder cannot be spelled by ordinary Markdown and the
// three namespaces never overlap. A placeholder is sentinel + index + sentinel.
const (
	codeSentinel   = "\uE010" // U+E010: fenced code block
	mathSentinel   = "\uE011" // U+E011: $$ block math
	strikeSentinel = "\uE012" // U+E012: ~~strikethrough~~
)

// mermaidLanguage is the fence info string rendered through MermaidMode.
const mermaidLanguage = "mermaid"

var (
	// Fenced code block, optional language tag, lazy body
	fencedCodePattern = regexp.MustCompile("(?s)```([\\w+#.-]+)?\\n?(.*?)```")

	// $$ block math $$
	blockMathPattern = regexp.MustCompile(`(?s)\$\$(.*?)\$\$`)

	// ~~strikethrough~~ on a single line
	strikethroughPattern = regexp.MustCompile(`~~(.+?)~~`)

	codePlaceholderPattern   = placeholderPattern(codeSentinel)
	mathPlaceholderPattern   = placeholderPattern(mathSentinel)
	strikePlaceholderPattern = placeholderPattern(strikeSentinel)
)

func placeholderPattern(sentinel string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(sentinel) + `(\d+)` + regexp.QuoteMeta(sentinel))
}

// Vault holds the regions lifted out of a document by Protect.
// Each slice is indexed by the number embedded in its placeholders.
type Vault struct {
	CodeBlocks     []string // formatted fences (or mermaid replacement text)
	BlockMath      []string // trimmed formula bodies, without $$
	Strikethroughs []string // text between ~~ and ~~
}

// Protect replaces fenced code, block math and strikethrough with
// placeholders. Order matters: code first so $$ or ~~ inside a fence stay
// verbatim, strikethrough last so the ~subscript~ pass never sees "~~".
func Protect(content string, r Rules) (string, *Vault) {
	v := &Vault{}

	content = replaceSubmatchFunc(fencedCodePattern, content, func(g []string) string {
		v.CodeBlocks = append(v.CodeBlocks, formatFence(g[1], g[2], r))
		return placeholder(codeSentinel, len(v.CodeBlocks)-1)
	})

	content = replaceSubmatchFunc(blockMathPattern, content, func(g []string) string {
		v.BlockMath = append(v.BlockMath, strings.TrimSpace(g[1]))
		return placeholder(mathSentinel, len(v.BlockMath)-1)
	})

	content = replaceSubmatchFunc(strikethroughPattern, content, func(g []string) string {
		v.Strikethroughs = append(v.Strikethroughs, g[1])
		return placeholder(strikeSentinel, len(v.Strikethroughs)-1)
	})

	return content, v
}

// Restore puts protected regions back by index. Strikethrough goes first
// because its body may itself contain code or math placeholders.
// Placeholders whose index is unknown are left as they are.
func (v *Vault) Restore(content string) string {
	content = restoreIndexed(strikePlaceholderPattern, content, v.Strikethroughs, func(s string) string {
		return "~~" + s + "~~"
	})
	content = restoreIndexed(codePlaceholderPattern, content, v.CodeBlocks, nil)
	content = restoreIndexed(mathPlaceholderPattern, content, v.BlockMath, nil)
	return content
}

// formatFence renders a protected fence: language tag dropped, body trimmed.
// Mermaid fences become the replacement text in MermaidText mode.
func formatFence(lang, body string, r Rules) string {
	if strings.EqualFold(lang, mermaidLanguage) && r.Mermaid == MermaidText {
		return r.MermaidText
	}
	return "```\n" + strings.TrimSpace(body) + "\n```"
}

func placeholder(sentinel string, index int) string {
	return sentinel + strconv.Itoa(index) + sentinel
}

func restoreIndexed(re *regexp.Regexp, content string, values []string, wrap func(string) string) string {
	return replaceSubmatchFunc(re, content, func(g []string) string {
		i, err := strconv.Atoi(g[1])
		if err != nil || i < 0 || i >= len(values) {
			return g[0]
		}
		if wrap != nil {
			return wrap(values[i])
		}
		return values[i]
	})
}
