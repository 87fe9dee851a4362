// SPDX-License-Identifier: EPL-2.0

package txt

import (
	"fmt"

	"github.com/ik5/audgraph/audio"
)

var (
	ErrMissingHeader = fmt.Errorf("%w: missing header", audio.ErrMalformedFile)
	ErrBadNumber     = fmt.Errorf("%w: not a number", audio.ErrMalformedFile)
	ErrShortData     = fmt.Errorf("%w: fewer samples than declared", audio.ErrMalformedFile)
)
