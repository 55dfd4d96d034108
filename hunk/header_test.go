package hunk

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseHeaderSizeTable(t *testing.T) {
	data := append(be(uint32(TagHeader), 0, 3, 0, 2),
		be(0x10, 1<<30|0x40, 2<<30|0x4)...)

	h, err := ParseHeader(NewCursor(data))
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}

	want := []*Hunk{
		{Index: 0, Class: MemAny, Size: 0x40, Offset: -1},
		{Index: 1, Class: MemChip, Size: 0x100, Offset: -1},
		{Index: 2, Class: MemFast, Size: 0x10, Offset: -1},
	}
	if diff := cmp.Diff(want, h.Hunks, cmpopts.IgnoreUnexported(Hunk{})); diff != "" {
		t.Fatalf("hunks mismatch (-want +got):\n%s", diff)
	}
	if h.TableSize != 3 || h.First != 0 || h.Last != 2 {
		t.Fatalf("unexpected table bounds: %+v", h)
	}
}

func TestParseHeaderLibrariesVerbatim(t *testing.T) {
	var data []byte
	data = append(data, be(uint32(TagHeader), 3)...)
	data = append(data, []byte("dos.library\x00")...)
	data = append(data, be(1)...)
	data = append(data, []byte{'a', 0xe9, 0, 0}...)
	data = append(data, be(0, 1, 0, 0, 1)...)

	h, err := ParseHeader(NewCursor(data))
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	want := [][]byte{[]byte("dos.library\x00"), {'a', 0xe9, 0, 0}}
	if diff := cmp.Diff(want, h.Libraries); diff != "" {
		t.Fatalf("libraries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "table size mismatch",
			data: be(uint32(TagHeader), 0, 3, 0, 1, 1, 1, 1),
			want: ErrTableSizeMismatch,
		},
		{
			name: "extended memory flags",
			data: be(uint32(TagHeader), 0, 1, 0, 0, 3<<30|1, 0x10000),
			want: ErrUnsupportedMemFlags,
		},
		{
			name: "unit file",
			data: be(uint32(TagUnit), 0),
			want: ErrNotExecutable,
		},
		{
			name: "unknown leading tag",
			data: be(0x12345678),
			want: ErrUnrecognizedHunkType,
		},
		{
			name: "truncated library name",
			data: be(uint32(TagHeader), 4, 0),
			want: ErrTruncatedInput,
		},
		{
			name: "truncated size table",
			data: be(uint32(TagHeader), 0, 4, 0, 3, 1),
			want: ErrTruncatedInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, err := ParseHeader(NewCursor(tc.data))
			if !errors.Is(err, tc.want) {
				t.Fatalf("ParseHeader: got %v, want %v", err, tc.want)
			}
			if h != nil {
				t.Fatalf("ParseHeader returned a header alongside %v", err)
			}
		})
	}
}

func TestParseHeaderNamesTag(t *testing.T) {
	_, err := ParseHeader(NewCursor(be(uint32(TagName), 0)))
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if e.Tag != TagName {
		t.Fatalf("tag: got %s, want %s", e.Tag, TagName)
	}
}

func TestTableSizeMismatchContext(t *testing.T) {
	_, err := ParseHeader(NewCursor(be(uint32(TagHeader), 0, 3, 5, 6)))
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if e.Expected != 3 || e.Actual != 2 {
		t.Fatalf("expected 3 vs 2, got %d vs %d", e.Expected, e.Actual)
	}
}
