package box2d_test

import (
	"testing"

	box2d "github.com/ByteArena/box2d-contacts"
	"github.com/prometheus/client_golang/prometheus"
)

// Sum of the samples of a family, restricted to pair when it is not empty.
func gathered(t *testing.T, registry *prometheus.Registry, name string, pair string) float64 {
	t.Helper()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}

		for _, metric := range family.GetMetric() {
			if pair != "" {
				matched := false
				for _, label := range metric.GetLabel() {
					if label.GetName() == "pair" && label.GetValue() == pair {
						matched = true
					}
				}
				if !matched {
					continue
				}
			}

			total += metric.GetCounter().GetValue() + metric.GetGauge().GetValue()
		}
	}

	return total
}

func TestContactMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics, err := box2d.NewB2ContactMetrics(registry, "test")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}

	def := box2d.MakeB2ContactFactoryDef()
	def.Registry = box2d.NewB2DefaultContactRegistry()
	def.Metrics = metrics
	mgr := box2d.NewB2ContactManager(box2d.NewB2ContactFactory(&def))

	a := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 0, 0, 1, "a")
	b := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 1.5, 0, 1, "b")
	box := newBoxFixture(box2d.B2BodyType.B2_staticBody, 0, -1.6, 5, 0.5, "box")

	mgr.AddPair(a, b)
	mgr.AddPair(a, box)

	// No listener: transitions are still counted.
	mgr.Collide()
	mgr.RemovePair(a, b)

	checks := []struct {
		name     string
		pair     string
		expected float64
	}{
		{"test_contacts_created_total", "circle", 1},
		{"test_contacts_created_total", "polygon-circle", 1},
		{"test_contacts_destroyed_total", "circle", 1},
		{"test_contact_pool_allocations_total", "circle", box2d.B2_contactPoolChunkSize},
		{"test_contact_pool_allocations_total", "polygon", 0},
		{"test_contacts_live", "", 1},
		{"test_contact_begin_total", "", 1},
		{"test_contact_end_total", "", 1},
	}

	for _, check := range checks {
		if got := gathered(t, registry, check.name, check.pair); got != check.expected {
			t.Errorf("%s{pair=%q}: got %v, expected %v", check.name, check.pair, got, check.expected)
		}
	}
}

func TestContactMetricsRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()

	if _, err := box2d.NewB2ContactMetrics(registry, "world"); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	if _, err := box2d.NewB2ContactMetrics(registry, "world"); err == nil {
		t.Errorf("duplicate registration should fail")
	}

	if _, err := box2d.NewB2ContactMetrics(registry, "other"); err != nil {
		t.Errorf("second namespace: %v", err)
	}

	metrics, err := box2d.NewB2ContactMetricsFromConfig(registry, box2d.MakeB2ContactConfig().Metrics)
	if err != nil || metrics != nil {
		t.Errorf("disabled metrics: got %v, %v", metrics, err)
	}

	// A nil sink records nothing.
	metrics.ContactCreated("circle")
	metrics.ContactBegan()
}
