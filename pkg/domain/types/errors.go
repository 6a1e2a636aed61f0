package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagNetwork marks transport failures: connection, HTTP status, broken stream
	ErrTagNetwork = goerr.NewTag("network")

	// ErrTagIO marks local filesystem failures: open, write, delete
	ErrTagIO = goerr.NewTag("io")

	// ErrTagFormat marks unreadable or corrupt archives
	ErrTagFormat = goerr.NewTag("format")
)
