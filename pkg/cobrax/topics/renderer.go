package topics

import "io"

// Renderer turns the raw content of a topic into what is printed on w.
// ext is the extension of the topic file, including the dot.
type Renderer interface {
	Render(w io.Writer, content, ext string) string
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

// Render implements Renderer
func (PlainRenderer) Render(_ io.Writer, content, _ string) string {
	return content
}
