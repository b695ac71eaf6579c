package service

import (
	"html"
	"strings"
)

// RenderBody turns a raw post body into safe markup. The whole body is
// HTML-escaped first, then the literal {{img}} / {{/img}} markers are
// substituted with the opening and closing of an image tag. The marker
// substitution runs strictly after escaping, so the image tag is the only
// channel through which author input becomes markup.
func RenderBody(raw string) string {
	escaped := html.EscapeString(raw)
	escaped = strings.ReplaceAll(escaped, "{{img}}", "<img src='")
	return strings.ReplaceAll(escaped, "{{/img}}", "'/>")
}
