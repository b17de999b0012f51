package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		day, month, year string
		want             string
		wantOK           bool
	}{
		{"all fragments", "1", "Jan", "23", "1 Jan 23", true},
		{"trims whitespace", " 31 ", "Mar ", " 23", "31 Mar 23", true},
		{"float numeric cells", "25.0", "Mar", "22.0", "25 Mar 22", true},
		{"missing day", "", "Jan", "23", "", false},
		{"missing month", "1", "  ", "23", "", false},
		{"missing year", "1", "Jan", "", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Compose(tt.day, tt.month, tt.year)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Compose(%q, %q, %q) = (%q, %v), want (%q, %v)",
					tt.day, tt.month, tt.year, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"23", "23"},
		{"23.0", "23"},
		{"2.5", "2.5"},
		{".0", ".0"},
		{"Mar.0", "Mar.0"},
		{"  Apr  ", "Apr"},
	}

	for _, tt := range tests {
		tt := tt
		if got := Fragment(tt.in); got != tt.want {
			t.Errorf("Fragment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "certificate style", format: "D MMM YY", want: "2 Jan 06"},
		{name: "ISO", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "long", format: "D MMMM YYYY", want: "2 January 2006"},
		{name: "escaped literal", format: "[Issued] D MMM", want: "Issued 2 Jan"},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "[Issued D", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: string(make([]byte, MaxDateFormatLength+1)), wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseDateFormat(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2022, time.March, 25, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "literal passthrough", value: "25 Mar 22", want: "25 Mar 22"},
		{name: "empty passthrough", value: "", want: ""},
		{name: "auto", value: "auto", want: "25 Mar 22"},
		{name: "auto uppercase", value: "AUTO", want: "25 Mar 22"},
		{name: "auto custom", value: "auto:DD/MM/YYYY", want: "25/03/2022"},
		{name: "auto preset", value: "auto:iso", want: "2022-03-25"},
		{name: "auto preset case-insensitive", value: "auto:LONG", want: "25 March 2022"},
		{name: "auto empty format", value: "auto:", wantErr: true},
		{name: "word starting with auto is literal", value: "Automatic", want: "Automatic"},
		{name: "phrase starting with auto is literal", value: "Autograph pending", want: "Autograph pending"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ResolveDate(tt.value, fixed)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Fatalf("ResolveDate(%q) error = %v, want ErrInvalidDateFormat", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
