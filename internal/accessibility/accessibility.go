// Package accessibility rewrites rendered exports with high-contrast or
// large-font presentation hints. It operates on the serialized buffer, after
// the format serializer has run.
package accessibility

import "strings"

const highContrastCSS = `
        body {
            background-color: #000000 !important;
            color: #ffffff !important;
        }
        .workout {
            background-color: #000080 !important;
            color: #ffffff !important;
            border: 2px solid #ffffff !important;
        }
        .rest-day {
            background-color: #800000 !important;
            color: #ffffff !important;
        }
        `

const largeFontCSS = `
        body {
            font-size: 18px !important;
            line-height: 1.6 !important;
        }
        h1 {
            font-size: 32px !important;
        }
        h2 {
            font-size: 28px !important;
        }
        h3 {
            font-size: 24px !important;
        }
        `

// Apply returns the buffer with accessibility modifications. With both flags
// false the input comes back unchanged. HTML content gets a style block,
// Markdown content gets an annotation line after the first heading, and plain
// text is returned as-is since no styling is possible.
func Apply(data string, highContrast, largeFont bool) string {
	if !highContrast && !largeFont {
		return data
	}

	lower := strings.ToLower(data)
	if strings.Contains(lower, "<html>") || strings.Contains(lower, "<body>") {
		return applyHTML(data, highContrast, largeFont)
	}
	if strings.HasPrefix(data, "#") || strings.Contains(data, "##") {
		return applyMarkdown(data, highContrast, largeFont)
	}
	return data
}

// applyHTML injects a style block before the closing head tag, or at the top
// of the body when there is no head, or prepended when there is neither.
func applyHTML(html string, highContrast, largeFont bool) string {
	var styles []string
	if highContrast {
		styles = append(styles, highContrastCSS)
	}
	if largeFont {
		styles = append(styles, largeFontCSS)
	}

	block := "<style>" + strings.Join(styles, "") + "</style>"
	switch {
	case strings.Contains(html, "</head>"):
		return strings.Replace(html, "</head>", block+"</head>", 1)
	case strings.Contains(html, "<body>"):
		return strings.Replace(html, "<body>", "<body>"+block, 1)
	default:
		return block + "\n" + html
	}
}

// applyMarkdown inserts a human-readable note naming the active options
// immediately after the first heading line, or at the very top if the
// document has no heading.
func applyMarkdown(md string, highContrast, largeFont bool) string {
	note := "\n**Accessibility Options Applied:**"
	if highContrast {
		note += " High Contrast"
	}
	if largeFont {
		note += " Large Font"
	}
	note += "\n\n---\n"

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "#") {
			lines = append(lines[:i+1], append([]string{note}, lines[i+1:]...)...)
			return strings.Join(lines, "\n")
		}
	}
	return note + "\n" + md
}
