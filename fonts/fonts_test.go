package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(10, 24); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{HUD, Small, Bold, Title} {
		if !Loaded(name) {
			t.Errorf("%s not loaded", name)
		}
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Fatal("expected parse error")
	}
	if Loaded("broken") {
		t.Error("broken font registered")
	}
}
