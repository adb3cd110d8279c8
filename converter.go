package articlaw

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms a clean HTML fragment into Markdown.
	// The input should be semantic HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
