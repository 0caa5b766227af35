// SPDX-License-Identifier: MIT

package rgba

import "errors"

// ErrBadHex indicates a string that is not a #rgb, #rrggbb or #rrggbbaa color.
var ErrBadHex = errors.New("rgba: malformed hex color")
