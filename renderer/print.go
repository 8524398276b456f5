package renderer

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/glamour"
)

// Print renders markdown for the terminal. If the terminal renderer cannot be
// built the raw markdown is printed instead.
func Print(w io.Writer, markdown string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(160),
	)
	if err != nil {
		log.Printf("cannot create markdown renderer, printing raw markdown: %v", err)
		_, err = fmt.Fprint(w, markdown)
		return err
	}
	out, err := r.Render(markdown)
	if err != nil {
		log.Printf("cannot render markdown, printing raw markdown: %v", err)
		out = markdown
	}
	_, err = fmt.Fprint(w, out)
	return err
}
