package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()

	tiers := []struct {
		name string
		get  func() time.Duration
		want time.Duration
	}{
		{"Ping", Ping, DefaultPing},
		{"Short", Short, DefaultShort},
		{"Medium", Medium, DefaultMedium},
		{"Long", Long, DefaultLong},
		{"Batch", Batch, DefaultBatch},
	}
	for _, tier := range tiers {
		if got := tier.get(); got != tier.want {
			t.Errorf("%s() = %v, want %v", tier.name, got, tier.want)
		}
	}

	// Tiers must stay ordered or the names lie.
	if !(Ping() < Short() && Short() < Medium() && Medium() < Long() && Long() < Batch()) {
		t.Error("tiers are not strictly increasing")
	}
}

func TestConfigure(t *testing.T) {
	defer Reset()

	Configure(Config{Medium: 15 * time.Second})

	if got := Medium(); got != 15*time.Second {
		t.Errorf("Medium() = %v after Configure, want 15s", got)
	}
	// Zero fields keep their current values.
	if got := Short(); got != DefaultShort {
		t.Errorf("Short() = %v, want untouched default %v", got, DefaultShort)
	}

	Reset()
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium() = %v after Reset, want %v", got, DefaultMedium)
	}
}
