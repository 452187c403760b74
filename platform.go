package argdata

import "github.com/pkg/errors"

// PlatformArgdata is the hook a host runtime replaces at process
// initialization to supply the raw argdata buffer (and its attached fds)
// the current process was started with. The codec itself never reaches out
// to the platform for this — obtaining it is a syscall/cgo concern entirely
// outside this package's scope — so the default implementation always
// fails, making the missing wiring visible rather than silently returning
// an empty value.
var PlatformArgdata = func() (*Encoded, error) {
	return nil, errors.New("argdata: no platform argdata source configured")
}
