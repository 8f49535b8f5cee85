package types

// ExtractionBackend identifies the PDF text extraction tool.
type ExtractionBackend string

const (
	BackendPDFLib    ExtractionBackend = "pdflib"
	BackendPdftotext ExtractionBackend = "pdftotext"
)

// ExtractionConfig holds settings for the text extraction stage.
type ExtractionConfig struct {
	// Backend selects the extraction tool: pdflib or pdftotext.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// PdftotextPath is the pdftotext executable to invoke. Empty means
	// look up "pdftotext" on PATH.
	PdftotextPath string `json:"pdftotext_path,omitempty" yaml:"pdftotext_path,omitempty"`

	// FallbackPdftotext retries a failed pdflib extraction with pdftotext.
	// It has no effect when Backend is already pdftotext.
	FallbackPdftotext bool `json:"fallback_pdftotext" yaml:"fallback_pdftotext"`
}

// OutputConfig holds settings for the stdout record.
type OutputConfig struct {
	// Pretty indents the JSON record instead of emitting it compact.
	Pretty bool `json:"pretty" yaml:"pretty"`
}

// Config groups all cvextract settings. It mirrors the layout of
// cvextract.yaml and the CVEXTRACT_* environment variables.
type Config struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Output     OutputConfig     `json:"output" yaml:"output"`
}

// DefaultConfig returns the built-in settings: pdflib extraction with the
// pdftotext fallback enabled, compact output.
func DefaultConfig() Config {
	return Config{
		Extraction: ExtractionConfig{
			Backend:           BackendPDFLib,
			FallbackPdftotext: true,
		},
	}
}
