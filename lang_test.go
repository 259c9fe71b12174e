package deepl

import "testing"

func TestParseLang(t *testing.T) {
	tests := []struct {
		input   string
		want    Lang
		wantErr bool
	}{
		{"DE", LangDE, false},
		{"de", LangDE, false},
		{"en-gb", LangENGB, false},
		{"PT-BR", LangPTBR, false},
		{"klingon", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLang(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLang(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLang(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLang(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLang_Description(t *testing.T) {
	if got := LangDE.Description(); got != "German" {
		t.Errorf("Description = %q, want German", got)
	}
	if got := LangENGB.Description(); got != "English (British)" {
		t.Errorf("Description = %q, want English (British)", got)
	}
}

func TestParseGlossaryLang(t *testing.T) {
	tests := []struct {
		input   string
		want    GlossaryLang
		wantErr bool
	}{
		{"en", GlossaryEN, false},
		{"EN", GlossaryEN, false},
		{"ja", GlossaryJA, false},
		{"en-us", "", true},
		{"xx", "", true},
	}

	for _, tt := range tests {
		got, err := ParseGlossaryLang(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseGlossaryLang(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGlossaryLang(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGlossaryLang(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
