package realnum

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestParseFormatSettings_Expr(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			expr string
			want FormatSettings
		}{
			{"", FormatSettings{}},
			{"thousands", FormatSettings{Thousands: boolPtr(true)}},
			{"!thousands", FormatSettings{Thousands: boolPtr(false)}},
			{"trailZeros showPlus", FormatSettings{TrailZeros: boolPtr(true), ShowPlus: boolPtr(true)}},
			{"!trailZeros accountingNeg breaking", FormatSettings{
				TrailZeros:    boolPtr(false),
				AccountingNeg: boolPtr(true),
				Breaking:      boolPtr(true),
			}},
			{"thousands=false", FormatSettings{Thousands: boolPtr(false)}},
			{"decPl=5", FormatSettings{DecPl: intPtr(5)}},
			{"decPl=0", FormatSettings{DecPl: intPtr(0)}},
			{"locale=de", FormatSettings{Locale: strPtr("de")}},
			{`locale="pt-BR"`, FormatSettings{Locale: strPtr("pt-BR")}},
			{"null", FormatSettings{Null: NullOmit()}},
			{"null=null", FormatSettings{Null: NullOmit()}},
			{"null=0", FormatSettings{Null: NullAs("0")}},
			{`null="null"`, FormatSettings{Null: NullAs("null")}},
			{`null='n/a'`, FormatSettings{Null: NullAs("n/a")}},
			{`null="not set"`, FormatSettings{Null: NullAs("not set")}},
			{"  thousands   decPl=2  ", FormatSettings{Thousands: boolPtr(true), DecPl: intPtr(2)}},
		}
		for _, tt := range tests {
			got, err := ParseFormatSettings(tt.expr)
			if err != nil {
				t.Errorf("ParseFormatSettings(%q) failed: %v", tt.expr, err)
				continue
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseFormatSettings(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"unknown token":     "bogus",
			"unknown negation":  "!bogus",
			"unknown key":       "bogus=1",
			"negated null":      "!null",
			"bad decPl":         "decPl=x",
			"negative decPl":    "decPl=-1",
			"empty locale":      "locale=",
			"bad bool":          "thousands=maybe",
			"unterminated":      `null="oops`,
			"stray quote":       `locale=d"e`,
		}
		for name, expr := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseFormatSettings(expr)
				if !errors.Is(err, ErrInvalidSettings) {
					t.Errorf("ParseFormatSettings(%q) = %v, want %v", expr, err, ErrInvalidSettings)
				}
			})
		}
	})
}

func TestParseFormatSettings_Map(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := ParseFormatSettings(map[string]any{
			"thousands": false,
			"decPl":     3,
			"locale":    "fr",
			"null":      "0",
			"showPlus":  true,
		})
		if err != nil {
			t.Fatalf("ParseFormatSettings(map) failed: %v", err)
		}
		want := FormatSettings{
			Thousands: boolPtr(false),
			DecPl:     intPtr(3),
			Locale:    strPtr("fr"),
			Null:      NullAs("0"),
			ShowPlus:  boolPtr(true),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("null variants", func(t *testing.T) {
		got, err := ParseFormatSettings(map[string]any{"null": nil})
		if err != nil {
			t.Fatalf("ParseFormatSettings failed: %v", err)
		}
		if got.Null == nil || got.Null.Show {
			t.Errorf("null: nil should parse as the omit display, got %+v", got.Null)
		}
		got, err = ParseFormatSettings(map[string]any{"null": 0})
		if err != nil {
			t.Fatalf("ParseFormatSettings failed: %v", err)
		}
		if got.Null == nil || !got.Null.Show || got.Null.Text != "0" {
			t.Errorf(`null: 0 should parse as text "0", got %+v`, got.Null)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]map[string]any{
			"unknown key":  {"bogus": true},
			"wrong type":   {"thousands": "yes"},
			"bad decPl":    {"decPl": "three"},
			"bad locale":   {"locale": 5},
			"empty locale": {"locale": ""},
		}
		for name, m := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseFormatSettings(m)
				if !errors.Is(err, ErrInvalidSettings) {
					t.Errorf("ParseFormatSettings(%v) = %v, want %v", m, err, ErrInvalidSettings)
				}
			})
		}
	})
}

func TestParseFormatSettings_Passthrough(t *testing.T) {
	in := FormatSettings{DecPl: intPtr(4)}
	got, err := ParseFormatSettings(in)
	if err != nil {
		t.Fatalf("ParseFormatSettings failed: %v", err)
	}
	if got.DecPl == in.DecPl {
		t.Errorf("parsed settings share pointers with the input")
	}
	if *got.DecPl != 4 {
		t.Errorf("DecPl = %v, want 4", *got.DecPl)
	}

	_, err = ParseFormatSettings(42)
	if !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("ParseFormatSettings(42) = %v, want %v", err, ErrInvalidSettings)
	}
}

func TestFormatSettings_Merge(t *testing.T) {
	base := FormatSettings{
		Thousands: boolPtr(false),
		DecPl:     intPtr(2),
		Null:      NullAs("0"),
	}
	over := FormatSettings{
		Thousands: boolPtr(true),
		Locale:    strPtr("de"),
	}
	got := base.merge(over)
	want := FormatSettings{
		Thousands: boolPtr(true),
		DecPl:     intPtr(2),
		Null:      NullAs("0"),
		Locale:    strPtr("de"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}

	// The merge result shares no pointers with either side.
	*over.Thousands = false
	*base.DecPl = 9
	if !*got.Thousands || *got.DecPl != 2 {
		t.Errorf("merge result shares pointers with its inputs")
	}
}

func TestFormatSettings_String(t *testing.T) {
	tests := []struct {
		fs   FormatSettings
		want string
	}{
		{FormatSettings{}, ""},
		{FormatSettings{Thousands: boolPtr(false)}, "!thousands"},
		{FormatSettings{Null: NullOmit()}, "null=null"},
		{FormatSettings{Null: NullAs("n/a")}, `null="n/a"`},
		{
			FormatSettings{
				TrailZeros: boolPtr(true),
				DecPl:      intPtr(2),
				Locale:     strPtr("de"),
				Breaking:   boolPtr(false),
			},
			`trailZeros decPl=2 locale=de !breaking`,
		},
	}
	for _, tt := range tests {
		if got := tt.fs.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		// Non-empty expressions parse back to the same settings.
		if tt.want == "" {
			continue
		}
		back, err := ParseFormatSettings(tt.fs.String())
		if err != nil {
			t.Errorf("ParseFormatSettings(%q) failed: %v", tt.fs.String(), err)
			continue
		}
		if diff := cmp.Diff(tt.fs, back); diff != "" {
			t.Errorf("round trip of %q mismatch (-want +got):\n%s", tt.fs.String(), diff)
		}
	}
}

func TestSetFormatSettings_MergesOntoInstance(t *testing.T) {
	n := MustNew(1).MustSetFormatSettings("!thousands decPl=2")
	n = n.MustSetFormatSettings("thousands")
	fs := n.FormatSettings()
	if fs.Thousands == nil || !*fs.Thousands {
		t.Errorf("Thousands = %v, want true", fs.Thousands)
	}
	if fs.DecPl == nil || *fs.DecPl != 2 {
		t.Errorf("DecPl = %v, want 2 (earlier setting should survive the merge)", fs.DecPl)
	}
}
