package topics

// Renderer formats topic content for the terminal. format is the file
// extension of the topic, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics as they are stored
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, _ string) string {
	return content
}
