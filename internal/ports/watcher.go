package ports

// Watcher monitors a project directory for Kotlin source changes.
type Watcher interface {
	// Watch starts monitoring projectPath recursively. onChange is called
	// with the absolute path of each changed .kt/.kts file.
	Watch(projectPath string, onChange func(filePath string)) error

	// Stop ends monitoring and releases resources. Safe to call twice.
	Stop() error
}
