package classify

import "testing"

func TestClassifyUSCSFineGrained(t *testing.T) {
	cases := []struct {
		name string
		in   USCSInput
		want string
	}{
		{
			"lean clay",
			USCSInput{LiquidLimit: 35, PlasticLimit: 15, Fines: 80, Sand: 15, Gravel: 5},
			"CL",
		},
		{
			"fat clay",
			USCSInput{LiquidLimit: 60, PlasticLimit: 25, Fines: 90, Sand: 8, Gravel: 2},
			"CH",
		},
		{
			"silt",
			USCSInput{LiquidLimit: 30, PlasticLimit: 28, Fines: 70, Sand: 25, Gravel: 5},
			"ML",
		},
		{
			"elastic silt",
			USCSInput{LiquidLimit: 65, PlasticLimit: 40, Fines: 85, Sand: 10, Gravel: 5},
			"MH",
		},
		{
			"border band",
			USCSInput{LiquidLimit: 25, PlasticLimit: 20, Fines: 60, Sand: 30, Gravel: 10},
			"CL-ML",
		},
		{
			"organic low",
			USCSInput{LiquidLimit: 35, PlasticLimit: 15, Fines: 80, Sand: 15, Gravel: 5, Organic: true},
			"OL",
		},
		{
			"organic high",
			USCSInput{LiquidLimit: 60, PlasticLimit: 25, Fines: 90, Sand: 8, Gravel: 2, Organic: true},
			"OH",
		},
	}
	for _, c := range cases {
		got, err := ClassifyUSCS(c.in)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestClassifyUSCSCoarseGrained(t *testing.T) {
	cases := []struct {
		name string
		in   USCSInput
		want string
	}{
		{
			"well graded sand",
			USCSInput{LiquidLimit: 0, PlasticLimit: 0, Fines: 3, Sand: 77, Gravel: 20, Cu: 8, Cc: 1.5},
			"SW",
		},
		{
			"poorly graded gravel",
			USCSInput{LiquidLimit: 0, PlasticLimit: 0, Fines: 2, Sand: 28, Gravel: 70, Cu: 3, Cc: 0.8},
			"GP",
		},
		{
			"clayey sand",
			USCSInput{LiquidLimit: 30, PlasticLimit: 12, Fines: 20, Sand: 60, Gravel: 20},
			"SC",
		},
		{
			"silty gravel",
			USCSInput{LiquidLimit: 25, PlasticLimit: 22, Fines: 18, Sand: 30, Gravel: 52},
			"GM",
		},
		{
			"dual symbol sand",
			USCSInput{LiquidLimit: 25, PlasticLimit: 22, Fines: 8, Sand: 62, Gravel: 30, Cu: 9, Cc: 2},
			"SW-SM",
		},
	}
	for _, c := range cases {
		got, err := ClassifyUSCS(c.in)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestClassifyUSCSValidation(t *testing.T) {
	// Fractions must sum to 100.
	_, err := ClassifyUSCS(USCSInput{LiquidLimit: 30, PlasticLimit: 15, Fines: 40, Sand: 30, Gravel: 10})
	if err == nil {
		t.Error("inconsistent fractions accepted")
	}
	// Coarse soil with few fines needs gradation coefficients.
	_, err = ClassifyUSCS(USCSInput{Fines: 3, Sand: 77, Gravel: 20})
	if err == nil {
		t.Error("missing gradation coefficients accepted")
	}
	// PL above LL is impossible.
	_, err = ClassifyUSCS(USCSInput{LiquidLimit: 20, PlasticLimit: 30, Fines: 80, Sand: 15, Gravel: 5})
	if err == nil {
		t.Error("plastic limit above liquid limit accepted")
	}
}

func TestClassifyAASHTO(t *testing.T) {
	cases := []struct {
		name string
		in   AASHTOInput
		want string
	}{
		{"stone fragments", AASHTOInput{LiquidLimit: 0, PlasticityIndex: 0, Fines: 10}, "A-1-a(0)"},
		{"fine sand", AASHTOInput{LiquidLimit: 0, PlasticityIndex: 0, Fines: 8}, "A-1-a(0)"},
		{"silty gravel", AASHTOInput{LiquidLimit: 35, PlasticityIndex: 8, Fines: 30}, "A-2-4(0)"},
		{"clayey gravel", AASHTOInput{LiquidLimit: 38, PlasticityIndex: 15, Fines: 30}, "A-2-6(1)"},
		{"silty soil", AASHTOInput{LiquidLimit: 35, PlasticityIndex: 8, Fines: 60}, "A-4(3)"},
		{"clayey soil", AASHTOInput{LiquidLimit: 37, PlasticityIndex: 18, Fines: 70}, "A-6(11)"},
		{"A-7-5", AASHTOInput{LiquidLimit: 55, PlasticityIndex: 22, Fines: 70}, "A-7-5(16)"},
		{"A-7-6", AASHTOInput{LiquidLimit: 50, PlasticityIndex: 30, Fines: 70}, "A-7-6(20)"},
	}
	for _, c := range cases {
		got, err := ClassifyAASHTO(c.in)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestGroupIndexClamped(t *testing.T) {
	if gi := groupIndex(20, 5, 40); gi != 0 {
		t.Errorf("group index = %v, want clamped 0", gi)
	}
}
