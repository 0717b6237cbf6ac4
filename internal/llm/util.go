package llm

import "strings"

// CleanJSONBlock strips markdown fences and any chatter around a JSON value.
func CleanJSONBlock(text string) string {
	text = stripFence(text)
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	closer := "}"
	if text[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(text, closer)
	if end < start {
		return text[start:]
	}
	return text[start : end+1]
}

// CleanHTMLBlock strips markdown fences from an HTML fragment.
func CleanHTMLBlock(text string) string {
	return stripFence(text)
}

func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	// drop a language tag such as json or html
	if idx := strings.Index(text, "\n"); idx >= 0 {
		first := text[:idx]
		if len(first) < 20 && !strings.ContainsAny(first, " {<[") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
