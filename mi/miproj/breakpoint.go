/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package miproj

import (
	"strconv"
	"strings"

	"github.com/nabbar/gdbwire/mierr"
	"github.com/nabbar/gdbwire/miparse"
)

// Disposition is what GDB does with a breakpoint after it is hit.
type Disposition uint8

const (
	DispositionDelete Disposition = iota
	DispositionDeleteNextStop
	DispositionDisable
	DispositionKeep
	DispositionUnknown
)

func (d Disposition) String() string {
	switch d {
	case DispositionDelete:
		return "delete"
	case DispositionDeleteNextStop:
		return "delete-next-stop"
	case DispositionDisable:
		return "disable"
	case DispositionKeep:
		return "keep"
	default:
		return "unknown"
	}
}

func mapDisposition(literal string) Disposition {
	switch literal {
	case "del":
		return DispositionDelete
	case "dstp":
		return DispositionDeleteNextStop
	case "dis":
		return DispositionDisable
	case "keep":
		return DispositionKeep
	default:
		return DispositionUnknown
	}
}

// Breakpoint is the projection of one `bkpt` tuple, grounded on
// gdbwire.c's `struct gdbwire_mi_breakpoint`. MultiBreakpoint is a
// non-owning back-reference to the parent of a multi-location child; it
// must never be used to decide lifetime (Go has no destructors, but the
// invariant carries over from the source design).
type Breakpoint struct {
	Number           string
	Enabled          bool
	Address          string
	Multi            bool
	Pending          bool
	CatchType        string
	Type             string
	Disposition      Disposition
	FuncName         string
	File             string
	FullName         string
	OriginalLocation string
	Line             uint64
	Times            uint64
	MultiBreakpoints []*Breakpoint
	MultiBreakpoint  *Breakpoint
	// FromMulti is true for a breakpoint reached only as a multi-location
	// child, whether linked via the modern `locations` list or the legacy
	// dotted-number sibling walk.
	FromMulti bool
}

func cstringOf(r *miparse.Result) (string, bool) {
	if r == nil || r.Kind != miparse.CStringKind {
		return "", false
	}
	return r.Str, true
}

func parseStrictUint(raw string) (uint64, mierr.Error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, mierr.Logicf("expected a decimal unsigned integer, got %q", raw)
	}
	return v, nil
}

// parseBreakpoint builds one Breakpoint from a `bkpt` tuple's children. If
// the modern `locations` nested list is present, its elements are parsed
// recursively and linked as MultiBreakpoints with their back-pointer set;
// they are not expected to also appear as siblings in the caller's body
// list.
func parseBreakpoint(children []*miparse.Result) (*Breakpoint, mierr.Error) {
	numberField := findByKey(children, "number")
	if numberField == nil {
		return nil, mierr.Assertf("breakpoint: missing required field %q", "number")
	}
	number, ok := cstringOf(numberField)
	if !ok {
		return nil, mierr.Assertf("breakpoint: field %q is not a c-string", "number")
	}

	bp := &Breakpoint{Number: number}

	if f := findByKey(children, "enabled"); f != nil {
		if s, ok := cstringOf(f); ok {
			bp.Enabled = strings.HasPrefix(s, "y")
		}
	}
	if f := findByKey(children, "addr"); f != nil {
		if s, ok := cstringOf(f); ok {
			bp.Address = s
			bp.Multi = s == "<MULTIPLE>"
			bp.Pending = s == "<PENDING>"
		}
	}
	if f := findByKey(children, "catch-type"); f != nil {
		bp.CatchType, _ = cstringOf(f)
	}
	if f := findByKey(children, "type"); f != nil {
		bp.Type, _ = cstringOf(f)
	}
	bp.Disposition = DispositionUnknown
	if f := findByKey(children, "disp"); f != nil {
		if s, ok := cstringOf(f); ok {
			bp.Disposition = mapDisposition(s)
		}
	}
	if f := findByKey(children, "func"); f != nil {
		bp.FuncName, _ = cstringOf(f)
	}
	if f := findByKey(children, "file"); f != nil {
		bp.File, _ = cstringOf(f)
	}
	if f := findByKey(children, "fullname"); f != nil {
		bp.FullName, _ = cstringOf(f)
	}
	if f := findByKey(children, "original-location"); f != nil {
		bp.OriginalLocation, _ = cstringOf(f)
	}
	if f := findByKey(children, "line"); f != nil {
		if s, ok := cstringOf(f); ok {
			v, err := parseStrictUint(s)
			if err != nil {
				return nil, err
			}
			bp.Line = v
		}
	}
	if f := findByKey(children, "times"); f != nil {
		if s, ok := cstringOf(f); ok {
			v, err := parseStrictUint(s)
			if err != nil {
				return nil, err
			}
			bp.Times = v
		}
	}

	if f := findByKey(children, "locations"); f != nil {
		if f.Kind != miparse.ListKind {
			return nil, mierr.Assertf("breakpoint: field %q is not a list", "locations")
		}
		for _, loc := range f.Children {
			if loc.Kind != miparse.TupleKind {
				return nil, mierr.Assertf("breakpoint: locations element is not a tuple")
			}
			child, err := parseBreakpoint(loc.Children)
			if err != nil {
				return nil, err
			}
			child.MultiBreakpoint = bp
			child.FromMulti = true
			bp.MultiBreakpoints = append(bp.MultiBreakpoints, child)
		}
	}

	return bp, nil
}

// projectBreakpointBody walks a `body` list's elements (order preserved),
// handling the legacy multi-location format where children are siblings
// carrying a dotted number. Elements produced by the modern `locations`
// field are attached inside parseBreakpoint and must not be duplicated
// here.
func projectBreakpointBody(body []*miparse.Result) ([]*Breakpoint, mierr.Error) {
	var top []*Breakpoint
	var lastTop *Breakpoint

	for _, elem := range body {
		if elem.Kind != miparse.TupleKind {
			return nil, mierr.Assertf("breakpoint table: body element is not a tuple")
		}
		bp, err := parseBreakpoint(elem.Children)
		if err != nil {
			return nil, err
		}

		if strings.Contains(bp.Number, ".") {
			if lastTop == nil {
				return nil, mierr.Assertf("breakpoint table: multi-location child %q has no preceding parent", bp.Number)
			}
			bp.MultiBreakpoint = lastTop
			bp.FromMulti = true
			lastTop.MultiBreakpoints = append(lastTop.MultiBreakpoints, bp)
			lastTop.Multi = true
		} else {
			top = append(top, bp)
			lastTop = bp
		}
	}

	return top, nil
}

func projectBreakInfo(results []*miparse.Result) (interface{}, mierr.Error) {
	table := findByKey(results, "BreakpointTable")
	if table == nil || table.Kind != miparse.TupleKind {
		return nil, mierr.Assertf("break-info: missing tuple %q", "BreakpointTable")
	}

	body := findByKey(table.Children, "body")
	if body == nil || body.Kind != miparse.ListKind {
		return nil, mierr.Assertf("break-info: missing list %q", "body")
	}

	return projectBreakpointBody(body.Children)
}

// projectBreakInsert handles the `-break-insert` result shape: either a
// single `bkpt` tuple, or a `bkpt` tuple followed by sibling elements for
// a legacy-format multi-location insert. Grounded on gdbwire.c's
// gdbwire_get_mi_breakpoint_insert, which reuses the same per-field
// parsing as break-info.
func projectBreakInsert(results []*miparse.Result) (interface{}, mierr.Error) {
	if len(results) == 0 {
		return nil, mierr.Assertf("break-insert: empty result")
	}
	return projectBreakpointBody(results)
}
