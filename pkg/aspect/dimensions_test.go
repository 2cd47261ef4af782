package aspect

import (
	"errors"
	"testing"
)

func TestDimensionResolve(t *testing.T) {
	calls := 0
	computed := Computed(func() int {
		calls++
		return 1920 * 4
	})

	if got := computed.Resolve(); got != 7680 {
		t.Errorf("Expected 7680, got %d", got)
	}
	if calls != 1 {
		t.Errorf("Expected producer to be called once, got %d", calls)
	}

	if got := Literal(1080).Resolve(); got != 1080 {
		t.Errorf("Expected 1080, got %d", got)
	}

	var absent Dimension
	if got := absent.Resolve(); got != 0 {
		t.Errorf("Expected absent dimension to resolve to 0, got %d", got)
	}

	if got := Computed(nil).Resolve(); got != 0 {
		t.Errorf("Expected nil producer to resolve to 0, got %d", got)
	}
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		input      string
		wantWidth  int
		wantHeight int
		wantErr    bool
	}{
		{"1920x1080", 1920, 1080, false},
		{"1080x1920", 1080, 1920, false},
		{"1920X1080", 1920, 1080, false},
		{"1x1", 1, 1, false},
		{"99999999x99999999", 99999999, 99999999, false},
		{"123456789x1080", 0, 0, true},
		{"1920x123456789", 0, 0, true},
		{"1920:1080", 0, 0, true},
		{" 1920x1080", 0, 0, true},
		{"1920x1080px", 0, 0, true},
		{"x1080", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h, err := ParseResolution(tt.input)
			if tt.wantErr {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("Expected *ParseError, got %v", err)
				}
				if !errors.Is(err, ErrResolutionMismatch) {
					t.Errorf("Expected error to wrap ErrResolutionMismatch")
				}
				if parseErr.Input != tt.input {
					t.Errorf("Expected Input %q, got %q", tt.input, parseErr.Input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantWidth, tt.wantHeight, w, h)
			}
		})
	}
}

func TestResolveDimensionsSorting(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "unsorted keeps order",
			opts:       Options{Width: Literal(1080), Height: Literal(1920)},
			wantWidth:  1080,
			wantHeight: 1920,
		},
		{
			name:       "descending",
			opts:       Options{Width: Literal(1080), Height: Literal(1920), SortDimensions: true, SortOrder: SortDescending},
			wantWidth:  1920,
			wantHeight: 1080,
		},
		{
			name:       "ascending",
			opts:       Options{Width: Literal(1920), Height: Literal(1080), SortDimensions: true, SortOrder: SortAscending},
			wantWidth:  1080,
			wantHeight: 1920,
		},
		{
			name:       "resolution descending",
			opts:       Options{Resolution: "720x1280", SortDimensions: true, SortOrder: SortDescending},
			wantWidth:  1280,
			wantHeight: 720,
		},
		{
			name:       "resolution wins over explicit",
			opts:       Options{Resolution: "800x600", Width: Literal(1), Height: Literal(2)},
			wantWidth:  800,
			wantHeight: 600,
		},
		{
			name:       "absent height",
			opts:       Options{Width: Literal(640)},
			wantWidth:  640,
			wantHeight: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := ResolveDimensions(tt.opts)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantWidth, tt.wantHeight, w, h)
			}
		})
	}
}

func TestResolveDimensionsInvalidResolution(t *testing.T) {
	_, _, err := ResolveDimensions(Options{Resolution: "full-hd"})
	if !errors.Is(err, ErrResolutionMismatch) {
		t.Errorf("Expected ErrResolutionMismatch, got %v", err)
	}
}

func TestParseSortOrder(t *testing.T) {
	if got := ParseSortOrder("ASC"); got != SortAscending {
		t.Errorf("Expected asc, got %s", got)
	}
	if got := ParseSortOrder("sideways"); got != SortDescending {
		t.Errorf("Expected unknown order to default to desc, got %s", got)
	}
}

func TestFormatResolution(t *testing.T) {
	if got := FormatResolution(1920, 1080); got != "1920x1080" {
		t.Errorf("Expected 1920x1080, got %s", got)
	}
}
