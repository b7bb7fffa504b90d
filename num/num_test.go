package num

import (
	"testing"

	"github.com/kbukum/fnkit/pipe"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		value int
		opts  []Bound[int]
		want  int
	}{
		{"no bounds", 7, nil, 7},
		{"below min", -3, []Bound[int]{Min(0)}, 0},
		{"above max", 12, []Bound[int]{Min(0), Max(10)}, 10},
		{"inside", 5, []Bound[int]{Min(0), Max(10)}, 5},
		{"only max", 3, []Bound[int]{Max(2)}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, tt.opts...); got != tt.want {
				t.Errorf("Clamp(%d) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
	if got := Clamp(1.5, Max(1.25)); got != 1.25 {
		t.Errorf("Clamp float = %v, want 1.25", got)
	}
}

func TestClampWith(t *testing.T) {
	got, err := pipe.Pipe[int](40, ClampWith(Max(10)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
}

func TestSteps(t *testing.T) {
	tests := []struct{ value, step, want int }{
		{546, 50, 500},
		{551, 50, 550},
		{0, 50, 0},
		{21, 50, 0},
		{51, 50, 50},
		{7, 0, 7},
	}
	for _, tt := range tests {
		if got := Steps(tt.value, tt.step); got != tt.want {
			t.Errorf("Steps(%d, %d) = %d, want %d", tt.value, tt.step, got, tt.want)
		}
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{"decimal string", "5.5", 5, true},
		{"leading junk", "zcx5.5", 0, false},
		{"trailing unit", "12px", 12, true},
		{"float", 22.2, 22, true},
		{"int64", int64(9), 9, true},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"leading zero", "08", 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ToInt(%v) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
	if ToIntOr("nope", 3) != 3 {
		t.Error("expected default")
	}
}

func TestToFloat(t *testing.T) {
	if f, ok := ToFloat("5.5"); !ok || f != 5.5 {
		t.Errorf("expected 5.5, got %v %v", f, ok)
	}
	if _, ok := ToFloat("zcx5.5"); ok {
		t.Error("expected failure for leading junk")
	}
	if ToFloatOr("zcx5.5", 0) != 0 {
		t.Error("expected default 0")
	}
	if ToFloatOr(22, 0) != 22 {
		t.Error("expected 22")
	}
	if ToFloatOr(nil, 1.5) != 1.5 {
		t.Error("expected default for nil")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 Bytes"},
		{100, "100Bytes"},
		{1045, "1.02KB"},
		{12450, "12.16KB"},
		{124750, "121.83KB"},
		{1245750, "1.19MB"},
		{212457150, "202.61MB"},
		{2112457150, "1.97GB"},
		{3221124571500, "2.93TB"},
		{3282118245791500, "2.92PB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := FormatBytes(1536, 0); got != "2KB" {
		t.Errorf("FormatBytes with 0 decimals = %q, want 2KB", got)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"10MB", 10 * 1024 * 1024},
		{"512kb", 512 * 1024},
		{"2GB", 2 * 1024 * 1024 * 1024},
		{"1.5KB", 1536},
		{"1TB", 1024 * 1024 * 1024 * 1024},
		{"100", 100},
		{"100B", 100},
		{"", 42},
		{"lots", 42},
		{"-5MB", 42},
	}
	for _, tt := range tests {
		if got := ParseSize(tt.in, 42); got != tt.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRandomIntFrom(t *testing.T) {
	tests := []struct {
		r    float64
		want int
	}{
		{0.1, 0},
		{0.5123, 2},
		{0.9123, 4},
	}
	for _, tt := range tests {
		if got := RandomIntFrom(0, 4, func() float64 { return tt.r }); got != tt.want {
			t.Errorf("RandomIntFrom(r=%v) = %d, want %d", tt.r, got, tt.want)
		}
	}
	for i := 0; i < 50; i++ {
		if n := RandomInt(3, 5); n < 3 || n > 5 {
			t.Fatalf("RandomInt out of range: %d", n)
		}
	}
}
