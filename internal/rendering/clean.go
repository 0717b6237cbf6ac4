package rendering

import (
	"regexp"
	"strings"
)

var (
	fenceRE   = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\n?(.*?)\\s*```$")
	wrapperRE = regexp.MustCompile(`(?is)</?(?:!doctype[^>]*|html[^>]*|body[^>]*)>`)
	headRE    = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	scriptRE  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
)

// CleanFragment turns raw model output into an embeddable HTML fragment:
// markdown fences, page wrappers, head and script elements are removed.
func CleanFragment(raw string) string {
	s := strings.TrimSpace(raw)
	if m := fenceRE.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	s = headRE.ReplaceAllString(s, "")
	s = scriptRE.ReplaceAllString(s, "")
	s = wrapperRE.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
