package smsspam

import "fmt"

// TransportError reports a failure to obtain the archive bytes
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ArchiveError reports a malformed archive, a missing member or a checksum mismatch
type ArchiveError struct {
	Member string
	Err    error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive member %q: %v", e.Member, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}
