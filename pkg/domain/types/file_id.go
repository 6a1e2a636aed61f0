package types

// FileID is an opaque token addressing a remote archive. Anyone holding it can
// download the file, so it is redacted from logs.
type FileID string

// String returns the raw token
func (x FileID) String() string {
	return string(x)
}
