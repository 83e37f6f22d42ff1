package container

import "testing"

func TestCipherClassForKnownModels(t *testing.T) {
	cases := []struct {
		model string
		want  CipherClass
	}{
		{"dv1MX0A000", ECB256},
		{"dv1MW0A000", ECB256},
		{"dv1NX0A000", ECB256},
		{"dv1JW0A000", CBC128Zip},
		{"dv1PA0A000", CBC128Zip},
		{"dv1SA0A000", CBC128Zip},
	}
	for _, c := range cases {
		if got := CipherClassFor(c.model); got != c.want {
			t.Errorf("CipherClassFor(%q) = %v, want %v", c.model, got, c.want)
		}
	}
}

func TestCipherClassForUnknownModelDefaultsToCBC(t *testing.T) {
	if got := CipherClassFor("does-not-exist"); got != CBC128Zip {
		t.Errorf("CipherClassFor(unknown) = %v, want CBC128Zip", got)
	}
}

func TestLookupModelUnknown(t *testing.T) {
	if _, ok := LookupModel("nope"); ok {
		t.Errorf("LookupModel(nope) reported ok=true")
	}
}

func TestModelsReturnsFullCatalog(t *testing.T) {
	models := Models()
	if len(models) != 17 {
		t.Errorf("len(Models()) = %d, want 17", len(models))
	}
}
