package types

import "testing"

func float64Ptr(v float64) *float64 { return &v }
func stringPtr(v string) *string    { return &v }
func intPtr(v int) *int             { return &v }
func boolPtr(v bool) *bool          { return &v }

func TestConfigKeepsDefaultsForAbsentParams(t *testing.T) {
	params := ConvertParams{}
	cfg := params.Config()

	want := DefaultConversionConfig()
	if cfg != want {
		t.Fatalf("empty params changed the defaults: got %+v, want %+v", cfg, want)
	}
}

func TestConfigOverridesOnlyPresentParams(t *testing.T) {
	params := ConvertParams{
		LeftRatio: float64Ptr(0.5),
		Rotate:    intPtr(0),
		Page:      stringPtr("letter"),
		FillWidth: boolPtr(false),
	}
	cfg := params.Config()

	if cfg.LeftRatio == nil || *cfg.LeftRatio != 0.5 {
		t.Errorf("LeftRatio = %v, want 0.5", cfg.LeftRatio)
	}
	if cfg.Rotate != 0 {
		t.Errorf("Rotate = %d, want 0", cfg.Rotate)
	}
	if cfg.Page != "letter" {
		t.Errorf("Page = %q, want letter", cfg.Page)
	}
	if cfg.FillWidth {
		t.Error("FillWidth should be overridden to false")
	}

	def := DefaultConversionConfig()
	if cfg.Margin != def.Margin || cfg.Scale != def.Scale || cfg.HAlign != def.HAlign {
		t.Errorf("untouched fields drifted from defaults: %+v", cfg)
	}
}

func TestValidateRejectsOutOfRangeParams(t *testing.T) {
	params := ConvertParams{
		LeftRatio: float64Ptr(1.5),
		Scale:     float64Ptr(0),
	}
	errs := Validate(&params)
	if len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %v", errs)
	}
	if _, ok := errs["LeftRatio"]; !ok {
		t.Errorf("missing LeftRatio error in %v", errs)
	}
	if _, ok := errs["Scale"]; !ok {
		t.Errorf("missing Scale error in %v", errs)
	}
}

func TestValidateAcceptsEmptyParams(t *testing.T) {
	params := ConvertParams{}
	if errs := Validate(&params); errs != nil {
		t.Fatalf("empty params should validate, got %v", errs)
	}
}
