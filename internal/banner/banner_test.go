// SPDX-License-Identifier: MPL-2.0

package banner

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	out := Render("0.1.5")

	if !strings.Contains(out, "caisson 0.1.5") {
		t.Error("banner must contain the application name and version")
	}
	if !strings.Contains(out, "\n") {
		t.Error("banner must be multi-line")
	}
}
