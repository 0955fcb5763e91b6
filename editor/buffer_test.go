//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	gott "github.com/timburks/coder/types"
)

func bufferRows(b *Buffer) []string {
	rows := make([]string, 0, b.GetRowCount())
	for i := 0; i < b.GetRowCount(); i++ {
		rows = append(rows, b.GetRowText(i))
	}
	return rows
}

func TestLoadBytesRoundTrip(t *testing.T) {
	for _, text := range []string{"", "\n", "one", "one\ntwo\n", "\n\nthree", "héllo\twörld\n"} {
		b := NewBuffer()
		b.LoadBytes([]byte(text))
		if got := string(b.Bytes()); got != text {
			t.Errorf("round trip of %q gave %q", text, got)
		}
	}
}

func TestEmptyBufferHasOneRow(t *testing.T) {
	b := NewBuffer()
	if b.GetRowCount() != 1 || b.GetRowText(0) != "" {
		t.Errorf("unexpected empty buffer %q", bufferRows(b))
	}
}

func TestInsertAndDeleteText(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("abc\ndef"))
	end := b.InsertText(gott.Point{Row: 0, Col: 1}, "X\nY\nZ")
	if end != (gott.Point{Row: 2, Col: 1}) {
		t.Errorf("insert ended at %+v", end)
	}
	want := []string{"aX", "Y", "Zbc", "def"}
	if diff := cmp.Diff(want, bufferRows(b)); diff != "" {
		t.Errorf("unexpected rows after insert (-want +got):\n%s", diff)
	}
	deleted := b.DeleteText(gott.Point{Row: 0, Col: 1}, end)
	if deleted != "X\nY\nZ" {
		t.Errorf("deleted %q", deleted)
	}
	want = []string{"abc", "def"}
	if diff := cmp.Diff(want, bufferRows(b)); diff != "" {
		t.Errorf("unexpected rows after delete (-want +got):\n%s", diff)
	}
	// reversed bounds are ordered
	if deleted := b.DeleteText(gott.Point{Row: 1, Col: 0}, gott.Point{Row: 0, Col: 3}); deleted != "\n" {
		t.Errorf("deleted %q", deleted)
	}
	if got := string(b.Bytes()); got != "abcdef" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestClip(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("ab\ncdef"))
	tests := []struct {
		in, want gott.Point
	}{
		{gott.Point{Row: -1, Col: -1}, gott.Point{Row: 0, Col: 0}},
		{gott.Point{Row: 0, Col: 9}, gott.Point{Row: 0, Col: 2}},
		{gott.Point{Row: 7, Col: 3}, gott.Point{Row: 1, Col: 3}},
	}
	for _, test := range tests {
		if got := b.Clip(test.in); got != test.want {
			t.Errorf("Clip(%+v) = %+v, want %+v", test.in, got, test.want)
		}
	}
}

func TestRowSearch(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("über alles über"))
	if col := b.FirstPositionInRowAtOrAfterCol(0, 0, "über"); col != 0 {
		t.Errorf("first match at %d", col)
	}
	if col := b.FirstPositionInRowAtOrAfterCol(0, 1, "über"); col != 11 {
		t.Errorf("second match at %d", col)
	}
	if col := b.FirstPositionInRowAtOrAfterCol(0, 12, "über"); col != -1 {
		t.Errorf("unexpected match at %d", col)
	}
	if col := b.LastPositionInRowBeforeCol(0, 15, "über"); col != 11 {
		t.Errorf("last match at %d", col)
	}
	if col := b.LastPositionInRowBeforeCol(0, 14, "über"); col != 0 {
		t.Errorf("last complete match at %d", col)
	}
}
