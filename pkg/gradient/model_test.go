package gradient

import "testing"

func TestParseModel(t *testing.T) {
	tests := []struct {
		in      string
		want    Model
		wantErr bool
	}{
		{"", ModelRGB, false},
		{"rgb", ModelRGB, false},
		{"RGB", ModelRGB, false},
		{"hsl", ModelHSL, false},
		{"HsL", ModelHSL, false},
		{"f00", ModelRGB, true},
		{"lab", ModelRGB, true},
	}

	for _, tt := range tests {
		got, err := ParseModel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseModel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseModel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if ModelHSL.String() != "hsl" || Model(5).String() != "Model(5)" {
		t.Errorf("Model.String() = %q, %q", ModelHSL.String(), Model(5).String())
	}
}
