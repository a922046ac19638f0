package heredity

import "testing"

func TestDefaultModelValidates(t *testing.T) {
	if err := DefaultModel().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultModelValues(t *testing.T) {
	m := DefaultModel()

	prior := map[GeneCount]float64{GeneZero: 0.96, GeneOne: 0.03, GeneTwo: 0.01}
	for g, want := range prior {
		if got := m.Prior(g); got != want {
			t.Errorf("Prior(%s): Got %v, expected %v", g, got, want)
		}
	}

	trait := map[GeneCount][2]float64{
		GeneTwo:  {0.35, 0.65},
		GeneOne:  {0.44, 0.56},
		GeneZero: {0.99, 0.01},
	}
	for g, want := range trait {
		if got := m.TraitProbability(g, false); got != want[0] {
			t.Errorf("TraitProbability(%s, false): Got %v, expected %v", g, got, want[0])
		}
		if got := m.TraitProbability(g, true); got != want[1] {
			t.Errorf("TraitProbability(%s, true): Got %v, expected %v", g, got, want[1])
		}
	}

	if m.Mutation != 0.01 {
		t.Errorf("Got mutation %v, expected 0.01", m.Mutation)
	}
}

func TestDefaultModelIsACopy(t *testing.T) {
	m := DefaultModel()
	m.GenePrior[GeneZero] = 0

	if got := DefaultModel().Prior(GeneZero); got != 0.96 {
		t.Errorf("Got %v, expected the default tables to be unaffected", got)
	}
}

func TestValidateRejectsBadTables(t *testing.T) {
	cases := map[string]func(*Model){
		"prior does not sum to one": func(m *Model) { m.GenePrior[GeneTwo] = 0.5 },
		"negative trait entry":      func(m *Model) { m.Trait[GeneOne] = [2]float64{1.5, -0.5} },
		"mutation above one":        func(m *Model) { m.Mutation = 1.5 },
	}

	for name, breakIt := range cases {
		m := DefaultModel()
		breakIt(&m)
		if err := m.Validate(); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestTransmission(t *testing.T) {
	m := DefaultModel()
	cases := map[GeneCount]float64{
		GeneTwo:  0.99,
		GeneOne:  0.5,
		GeneZero: 0.01,
	}
	for g, want := range cases {
		if got := m.Transmission(g); !approx(got, want, 1e-15) {
			t.Errorf("Transmission(%s): Got %v, expected %v", g, got, want)
		}
	}
}

func TestInheritIsADistribution(t *testing.T) {
	values := []float64{0, 0.01, 0.5, 0.99, 1}
	for _, mother := range values {
		for _, father := range values {
			sum := 0.0
			for _, g := range GeneCounts {
				sum += Inherit(g, mother, father)
			}
			if !approx(sum, 1, 1e-12) {
				t.Errorf("mother=%v father=%v: Got %v, expected 1", mother, father, sum)
			}
		}
	}
}

func TestInherit(t *testing.T) {
	if got, want := Inherit(GeneTwo, 0.99, 0.5), 0.495; !approx(got, want, 1e-15) {
		t.Errorf("Got %v, expected %v", got, want)
	}
	if got, want := Inherit(GeneOne, 0.99, 0.01), 0.99*0.99+0.01*0.01; !approx(got, want, 1e-15) {
		t.Errorf("Got %v, expected %v", got, want)
	}
	if got, want := Inherit(GeneZero, 0.01, 0.01), 0.99*0.99; !approx(got, want, 1e-15) {
		t.Errorf("Got %v, expected %v", got, want)
	}
}
