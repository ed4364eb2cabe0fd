// SPDX-License-Identifier: MIT

package lightsout

import "errors"

// ErrConfiguration is the shared class for every input that cannot describe a
// valid search: empty batches, non-square layouts, mismatched grid sizes and
// out-of-range parameters. Subpackages define narrower sentinels that wrap it,
// so callers may match either the specific sentinel or this class with errors.Is.
var ErrConfiguration = errors.New("lightsout: invalid configuration")
