package store

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
)

var (
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reHeading  = regexp.MustCompile(`^#{1,6}\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+`)
)

// writeDocx renders the bundle as a meeting minutes document.
// Model output is markdown-ish, so headings, bullets and bold spans are translated.
func writeDocx(path string, v bundleView) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), "Meeting Minutes", true, 16)
	addStyledRun(doc.AddParagraph(""), v.Provenance.CreatedAt.Format("2006-01-02 15:04"), false, 10)

	for _, s := range v.sections {
		addStyledRun(doc.AddParagraph(""), s.Title, true, 14)
		for _, line := range strings.Split(s.Text, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}

			switch {
			case reHeading.MatchString(trimmed):
				addStyledRun(doc.AddParagraph(""), reHeading.FindStringSubmatch(trimmed)[1], true, 13)
			case reBullet.MatchString(trimmed):
				addRichText(doc.AddParagraph(""), "• "+reBullet.FindStringSubmatch(trimmed)[1])
			case reNumbered.MatchString(trimmed):
				addRichText(doc.AddParagraph(""), trimmed)
			default:
				addRichText(doc.AddParagraph(""), trimmed)
			}
		}
	}

	if v.IsFallback() {
		addStyledRun(doc.AddParagraph(""), "Generated without a transcript: "+v.Provenance.Reason, false, 10)
	}

	return doc.SaveTo(path)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanMarkdownInline(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
