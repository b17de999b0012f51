package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()
		hint := ForConfigNotFound([]string{"full.yaml", "/home/u/.config/go-certgen/full.yaml"})
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("hint = %q, want hint prefix", hint)
		}
		if !strings.Contains(hint, "--config") {
			t.Errorf("hint = %q, want --config suggestion", hint)
		}
		if !strings.Contains(hint, "create /home/u/.config/go-certgen/full.yaml") {
			t.Errorf("hint = %q, want user config path", hint)
		}
	})

	t.Run("no user path", func(t *testing.T) {
		t.Parallel()
		hint := ForConfigNotFound([]string{"full.yaml"})
		if strings.Contains(hint, "create") {
			t.Errorf("hint = %q, want no create suggestion", hint)
		}
	})
}

func TestForMissingColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		missing []string
		found   []string
		want    []string
		notWant []string
	}{
		{
			name:    "case mismatch",
			missing: []string{"Name"},
			found:   []string{"name", "from"},
			want:    []string{`rename column "name" to "Name"`, "found columns: from, name"},
		},
		{
			name:    "padded header",
			missing: []string{"s_month"},
			found:   []string{"Name", " s_month "},
			want:    []string{`rename column " s_month " to "s_month"`},
		},
		{
			name:    "unrelated header",
			missing: []string{"Name"},
			found:   []string{"Participant"},
			want:    []string{"found columns: Participant"},
			notWant: []string{"rename"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hint := ForMissingColumn(tt.missing, tt.found)
			for _, w := range tt.want {
				if !strings.Contains(hint, w) {
					t.Errorf("hint = %q, want containing %q", hint, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(hint, nw) {
					t.Errorf("hint = %q, want not containing %q", hint, nw)
				}
			}
		})
	}
}

func TestForMissingColumn_Empty(t *testing.T) {
	t.Parallel()
	if hint := ForMissingColumn([]string{"Name"}, nil); hint != "" {
		t.Errorf("hint = %q, want empty", hint)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"input not found", ForInputNotFound("CERTGEN_TEMPLATE"), "CERTGEN_TEMPLATE"},
		{"unsupported input", ForUnsupportedInput(), ".csv"},
		{"output directory", ForOutputDirectory(), "writable"},
	}

	for _, tt := range tests {
		tt := tt
		if !strings.HasPrefix(tt.hint, "\n  hint: ") || !strings.Contains(tt.hint, tt.want) {
			t.Errorf("%s: hint = %q, want containing %q", tt.name, tt.hint, tt.want)
		}
	}
}
