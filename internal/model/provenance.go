package model

// Provenance links an in-memory model descriptor back to the manifest file
// it was decoded from. It exists purely for diagnostics: error messages can
// point at "which file" a model came from the same way the teacher's FSInfo
// does for steps and runners.
type Provenance struct {
	FilePath string
}

// NewProvenance creates provenance metadata for the given source file.
func NewProvenance(filePath string) *Provenance {
	return &Provenance{FilePath: filePath}
}
