package mdalerts

import "testing"

func TestDefaultAlerts(t *testing.T) {
	t.Parallel()

	want := map[string]AlertSpec{
		"NOTE":      {StyleClass: "is-info", Icon: "alert-circle", Label: "Note"},
		"TIP":       {StyleClass: "is-success", Icon: "leaf", Label: "Tip"},
		"IMPORTANT": {StyleClass: "is-important", Icon: "hand-right", Label: "Important"},
		"CAUTION":   {StyleClass: "is-caution", Icon: "skull", Label: "Caution"},
		"WARNING":   {StyleClass: "is-warning", Icon: "warning", Label: "Warning"},
	}

	got := DefaultAlerts()
	if len(got) != len(want) {
		t.Fatalf("DefaultAlerts() has %d entries, want %d", len(got), len(want))
	}
	for tag, spec := range want {
		if got[tag] != spec {
			t.Errorf("DefaultAlerts()[%q] = %+v, want %+v", tag, got[tag], spec)
		}
	}
}

func TestDefaultAlertsReturnsFreshMap(t *testing.T) {
	t.Parallel()

	a := DefaultAlerts()
	a[TagNote] = AlertSpec{StyleClass: "mutated", Label: "x"}

	if DefaultAlerts()[TagNote].StyleClass != "is-info" {
		t.Error("mutating one copy must not affect later calls")
	}
}
