package vsoclient

import "testing"

func TestNegotiateAPIVersion(t *testing.T) {
	preview := &ResourceLocation{
		ResourceVersion: 3,
		MinVersion:      "1.0",
		MaxVersion:      "5.0",
		ReleasedVersion: "4.1",
	}
	released := &ResourceLocation{
		ResourceVersion: 2,
		MinVersion:      "1.0",
		MaxVersion:      "4.1",
		ReleasedVersion: "4.1",
	}

	tests := []struct {
		name      string
		location  *ResourceLocation
		requested string
		want      string
	}{
		{"released version", preview, "4.1", "4.1"},
		{"older released version", preview, "3.0", "3.0"},
		{"preview within max", preview, "5.0-preview", "5.0-preview"},
		{"preview with known resource version", preview, "5.0-preview.2", "5.0-preview.2"},
		{"preview with same resource version", preview, "4.2-preview.3", "4.2-preview.3"},
		{"resource version too new", preview, "5.0-preview.4", "5.0-preview.3"},
		{"unreleased without preview", preview, "4.5", "4.5-preview"},
		{"above max", preview, "6.0", "5.0-preview.3"},
		{"empty", preview, "", "5.0-preview.3"},
		{"garbage", preview, "latest", "5.0-preview.3"},
		{"above max fully released", released, "5.0", "4.1"},
		{"empty fully released", released, "", "4.1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := NegotiateAPIVersion(test.location, test.requested); got != test.want {
				t.Errorf("NegotiateAPIVersion(%q) = %q, want %q", test.requested, got, test.want)
			}
		})
	}
}
