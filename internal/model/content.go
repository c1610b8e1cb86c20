package model

import (
	"strings"

	"golang.org/x/net/html"
)

// ContentText returns the document body as plain text. HTML content is
// preferred when present, degraded to text since the client renders no
// markup; block-level tags become line breaks.
func (s *SigningSession) ContentText() string {
	if s.ContentHTML != "" {
		return stripHTML(s.ContentHTML)
	}
	return s.ContentPlain
}

var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "section": true, "blockquote": true,
}

func stripHTML(doc string) string {
	var b strings.Builder
	b.Grow(len(doc))
	z := html.NewTokenizer(strings.NewReader(doc))
	skip := 0
	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			return collapseBlankLines(b.String())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				switch tt {
				case html.StartTagToken:
					skip++
				case html.EndTagToken:
					if skip > 0 {
						skip--
					}
				}
			}
			if blockTags[tag] {
				b.WriteByte('\n')
			}
		case html.TextToken:
			// Text() decodes character references, including numeric ones.
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// collapseBlankLines trims each line and squeezes the runs of blank lines
// left behind by nested block markup.
func collapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	blank := false
	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, trimmed)
	}
	if len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
