package port

// ContentURLResolver maps a dialog name to the page that renders it.
type ContentURLResolver interface {
	// ContentURL returns the URL of the page for the named dialog.
	ContentURL(name string) (string, error)
	// IsDevelopment reports whether pages come from a development server.
	IsDevelopment() bool
}
