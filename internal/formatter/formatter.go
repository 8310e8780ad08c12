// package formatter renders genre catalogs and generation results for the
// headless CLI commands (plain text, Markdown)
package formatter

import (
	"bytes"
	"fmt"

	"github.com/spotbird/spotmix/internal/models"
)

// LinksToText renders result links as a numbered plain text list.
func LinksToText(links []models.ResultLink) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Created %d playlist(s)\n\n", len(links)))
	for i, link := range links {
		buf.WriteString(fmt.Sprintf("%d. %s\n   %s\n", i+1, link.Name, link.URL))
	}

	return buf.Bytes()
}

// LinksToMarkdown renders result links as a Markdown list.
func LinksToMarkdown(links []models.ResultLink) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Generated Playlists\n\n")
	for _, link := range links {
		buf.WriteString(fmt.Sprintf("- [%s](%s)\n", link.Name, link.URL))
	}

	return buf.Bytes()
}

// GenresToText renders the genre catalog one identifier per line, marking the
// entries present in selected.
func GenresToText(catalog []string, selected *models.GenreSelection) []byte {
	var buf bytes.Buffer

	for _, genre := range catalog {
		marker := " "
		if selected != nil && selected.Has(genre) {
			marker = "*"
		}
		buf.WriteString(fmt.Sprintf("%s %s\n", marker, genre))
	}
	buf.WriteString(fmt.Sprintf("\n%d genre(s)\n", len(catalog)))

	return buf.Bytes()
}
