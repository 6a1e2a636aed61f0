package model

// ExtractResult represents the result of extracting an archive
type ExtractResult struct {
	Files []string // Entry names written, in archive order
	Size  int64    // Total uncompressed size in bytes
}
