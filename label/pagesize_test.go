package label

import (
	"errors"
	"testing"
)

func TestParsePageSizePresets(t *testing.T) {
	tests := []struct {
		in   string
		want PageSize
	}{
		{"a4", PageSize{595.276, 841.89}},
		{"A4", PageSize{595.276, 841.89}},
		{"  letter ", PageSize{612.0, 792.0}},
		{"LETTER", PageSize{612.0, 792.0}},
	}
	for _, tt := range tests {
		got, err := ParsePageSize(tt.in)
		if err != nil {
			t.Fatalf("ParsePageSize(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePageSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePageSizeExplicit(t *testing.T) {
	tests := []struct {
		in   string
		want PageSize
	}{
		{"595x842", PageSize{595, 842}},
		{"595.276x841.89", PageSize{595.276, 841.89}},
		{"  600x400  ", PageSize{600, 400}},
	}
	for _, tt := range tests {
		got, err := ParsePageSize(tt.in)
		if err != nil {
			t.Fatalf("ParsePageSize(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePageSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePageSizeInvalid(t *testing.T) {
	for _, in := range []string{"", "a5", "595x", "x842", "595 x 842", "widthxheight", "-595x842"} {
		_, err := ParsePageSize(in)
		if !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("ParsePageSize(%q): expected ErrInvalidPageSize, got %v", in, err)
		}
	}
}

func TestPortrait(t *testing.T) {
	landscape := PageSize{W: 842, H: 595}
	if got := landscape.Portrait(); got.H < got.W {
		t.Errorf("Portrait() = %v, height must be >= width", got)
	}
	portrait := PageSize{W: 595, H: 842}
	if got := portrait.Portrait(); got != portrait {
		t.Errorf("Portrait() changed an already portrait size: %v", got)
	}
}

func TestTargetRect(t *testing.T) {
	target := TargetRect(PageSize{W: 600, H: 800}, 12)
	want := Rect{12, 12, 588, 788}
	if target != want {
		t.Errorf("TargetRect = %v, want %v", target, want)
	}
}
