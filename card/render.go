// Package card renders structured micro-post metadata as self-contained,
// inline-styled HTML cards. Rendering is pure data-to-HTML: it never touches
// a document tree.
package card

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/zoltlabs/articlaw"
)

const (
	cardStyle   = "border:1px solid #e1e8ed;border-radius:12px;padding:16px;margin:16px 0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background:#fff;max-width:550px"
	headerStyle = "display:flex;align-items:center;gap:10px;margin-bottom:12px"
	avatarStyle = "width:48px;height:48px;border-radius:50%;object-fit:cover"
	badgeStyle  = "width:48px;height:48px;border-radius:50%;background:#1d9bf0;color:#fff;display:flex;align-items:center;justify-content:center;font-size:20px;font-weight:700"
	nameStyle   = "font-weight:700;color:#0f1419;font-size:15px"
	handleStyle = "color:#536471;font-size:14px"
	brandStyle  = "margin-left:auto;font-size:18px;font-weight:700;color:#0f1419"
	bodyStyle   = "color:#0f1419;font-size:15px;line-height:1.4;white-space:pre-wrap"
	gridStyle   = "display:grid;grid-template-columns:repeat(%d,1fr);gap:4px;margin-top:12px;border-radius:12px;overflow:hidden"
	imageStyle  = "width:100%;display:block;object-fit:cover"
	footerStyle = "color:#536471;font-size:13px;margin-top:12px"
)

// Render builds one self-contained card from a post's metadata. When
// sourceURL is non-empty the whole card is wrapped in a link to the source.
func Render(post articlaw.PostMeta, sourceURL string) string {
	var b strings.Builder

	b.WriteString(`<div class="tweet-card" style="` + cardStyle + `">`)

	// Header: avatar (or initial-letter badge), name, handle, brand mark.
	b.WriteString(`<div style="` + headerStyle + `">`)
	if post.AvatarURL != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="" style="%s">`, html.EscapeString(post.AvatarURL), avatarStyle)
	} else {
		b.WriteString(`<div style="` + badgeStyle + `">` + initialLetter(post.DisplayName) + `</div>`)
	}
	b.WriteString(`<div>`)
	if post.DisplayName != "" {
		b.WriteString(`<div style="` + nameStyle + `">` + html.EscapeString(post.DisplayName) + `</div>`)
	}
	if post.Handle != "" {
		b.WriteString(`<div style="` + handleStyle + `">` + html.EscapeString(post.Handle) + `</div>`)
	}
	b.WriteString(`</div>`)
	b.WriteString(`<div style="` + brandStyle + `">&#120143;</div>`)
	b.WriteString(`</div>`)

	// Body text (already HTML from extraction).
	b.WriteString(`<div style="` + bodyStyle + `">` + post.TextHTML + `</div>`)

	// Image grid: single image spans the card, multiples go two-up.
	if len(post.Images) > 0 {
		cols := 1
		if len(post.Images) > 1 {
			cols = 2
		}
		fmt.Fprintf(&b, `<div style="`+gridStyle+`">`, cols)
		for _, src := range post.Images {
			fmt.Fprintf(&b, `<img src="%s" alt="" style="%s">`, html.EscapeString(src), imageStyle)
		}
		b.WriteString(`</div>`)
	}

	// Timestamp footer: omitted entirely when no timestamp was captured.
	if post.Timestamp != "" {
		b.WriteString(`<div style="` + footerStyle + `">` + html.EscapeString(formatTimestamp(post.Timestamp)) + `</div>`)
	}

	b.WriteString(`</div>`)

	if sourceURL != "" {
		return fmt.Sprintf(`<a href="%s" style="text-decoration:none;color:inherit">%s</a>`, html.EscapeString(sourceURL), b.String())
	}
	return b.String()
}

// RenderThread renders each post of a thread as a card, concatenated in
// sequence order. The result completely replaces the plain-content
// representation for the clip.
func RenderThread(posts []articlaw.PostMeta, sourceURL string) string {
	cards := make([]string, len(posts))
	for i, post := range posts {
		cards[i] = Render(post, sourceURL)
	}
	return strings.Join(cards, "\n")
}

// formatTimestamp parses an ISO-8601 timestamp and renders it in a
// locale-style form. Unparseable values pass through verbatim.
func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("Jan 2, 2006, 3:04 PM")
}

// initialLetter returns the uppercased first rune of the display name, or a
// placeholder for anonymous posts.
func initialLetter(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}
