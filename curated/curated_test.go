// This file is part of Mipsim.
//
// Mipsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mipsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mipsim.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/pipistrelle/mipsim/curated"
	"github.com/pipistrelle/mipsim/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrapping error: %v"

func TestMatching(t *testing.T) {
	e := curated.Errorf(testPattern, "detail")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectSuccess(t, curated.Is(f, wrapPattern))

	// the wrapped pattern is no longer matched by Is() but it is by Has()
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	// uncurated errors match nothing
	u := errors.New("uncurated")
	test.ExpectFailure(t, curated.IsAny(u))
	test.ExpectFailure(t, curated.Is(u, testPattern))
	test.ExpectFailure(t, curated.Has(u, testPattern))
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent message parts are removed
	e := curated.Errorf("error: %v", curated.Errorf("error: %s", "detail"))
	test.ExpectEquality(t, e.Error(), "error: detail")
}
