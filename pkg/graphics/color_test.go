package graphics

import "testing"

func TestColorString(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorBlack, "#000000"},
		{ColorLightGreen, "#90EE90"},
		{ColorLightBlue, "#ADD8E6"},
		{ColorTransparent, "#00000000"},
		{RGBA8(1, 2, 3, 0x80), "#80010203"},
	}
	for _, tt := range tests {
		if got := tt.color.String(); got != tt.want {
			t.Errorf("Color(%08X).String() = %q, want %q", uint32(tt.color), got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"red", ColorRed, false},
		{"Light-Blue", ColorLightBlue, false},
		{"#FFFF00", ColorYellow, false},
		{"#8000ff00", RGBA8(0, 0xFF, 0, 0x80), false},
		{"#12345", 0, true},
		{"mauve", 0, true},
		{"#zzzzzz", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorComponents(t *testing.T) {
	r, g, b, a := ColorLightGreen.Components()
	if r != 0x90 || g != 0xEE || b != 0x90 || a != 0xFF {
		t.Errorf("Components() = %d,%d,%d,%d", r, g, b, a)
	}
	if got := ColorLightGreen.Name(); got != "light-green" {
		t.Errorf("Name() = %q, want light-green", got)
	}
	if got := RGB(1, 1, 1).Name(); got != "" {
		t.Errorf("Name() of unnamed color = %q, want empty", got)
	}
	nrgba := ColorYellow.NRGBA()
	if nrgba.R != 0xFF || nrgba.G != 0xFF || nrgba.B != 0 || nrgba.A != 0xFF {
		t.Errorf("NRGBA() = %+v", nrgba)
	}
}
