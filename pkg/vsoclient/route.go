package vsoclient

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ReplaceRouteValues expands a location route template such as
// "{project}/_apis/build/builds/{buildId}".
//
// Values are URL encoded. A parameter that is missing (or empty, zero or false)
// contributes nothing, and path segments that end up empty are dropped, so optional
// parameters vanish from the path. "{*path}" style wildcards are looked up without
// their punctuation. "{{" and "}}" stand for literal braces. The result has no
// leading slash.
func ReplaceRouteValues(routeTemplate string, values Values) string {
	var (
		result      strings.Builder
		currentPart strings.Builder
		paramName   strings.Builder
		insideParam bool
	)

	flush := func() {
		if currentPart.Len() == 0 {
			return
		}
		if result.Len() > 0 {
			result.WriteByte('/')
		}
		result.WriteString(currentPart.String())
		currentPart.Reset()
	}

	for i := 0; i < len(routeTemplate); i++ {
		c := routeTemplate[i]

		if insideParam {
			if c != '}' {
				paramName.WriteByte(c)
				continue
			}
			insideParam = false
			name := paramName.String()
			paramName.Reset()
			if v := values[name]; truthy(v) {
				currentPart.WriteString(encodeRouteValue(v))
			} else if v := values[nonAlphanumeric.ReplaceAllString(name, "")]; truthy(v) {
				currentPart.WriteString(encodeRouteValue(v))
			}
			continue
		}

		switch c {
		case '/':
			flush()
		case '{':
			if i+1 < len(routeTemplate) && routeTemplate[i+1] == '{' {
				currentPart.WriteByte(c)
				i++
			} else {
				insideParam = true
			}
		case '}':
			currentPart.WriteByte(c)
			if i+1 < len(routeTemplate) && routeTemplate[i+1] == '}' {
				i++
			}
		default:
			currentPart.WriteByte(c)
		}
	}
	flush()

	return result.String()
}

func encodeRouteValue(v any) string {
	v, _ = indirect(v)
	return encodeURIComponent(formatScalar(v))
}
