package ports

import "context"

// Generator is the opaque text-generation capability the scoring adapter
// delegates to. Implementations return best-effort prose that may or may not
// embed a JSON object; output schema is the adapter's problem, not the
// transport's. Implementations must honor ctx cancellation and deadlines.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FileStore abstracts durable text reads/writes for the criteria repository.
// ReadText reports a missing file via an error matching fs.ErrNotExist.
type FileStore interface {
	ReadText(path string) (string, error)
	WriteText(path string, content string) error
}
