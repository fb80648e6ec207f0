package build

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnumString(t *testing.T) {
	tests := []struct {
		name  string
		value interface{ String() string }
		want  string
	}{
		{"exact", BuildStatusCompleted, "completed"},
		{"aggregate", BuildStatusAll, "all"},
		{"flags", BuildReasonManual | BuildReasonSchedule, "manual, schedule"},
		{"zero", BuildResultNone, "none"},
		{"unknown", BuildResult(3), "3"},
		{"priority", QueuePriorityBelowNormal, "belowNormal"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.value.String(); got != test.want {
				t.Errorf("String() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestTriggerTypes(t *testing.T) {
	var d BuildDefinition
	err := json.Unmarshal([]byte(`{
		"id": 1,
		"triggers": [
			{"triggerType": "continuousIntegration", "branchFilters": ["+main"]},
			{"triggerType": 8, "schedules": []},
			{"triggerType": "somethingNew"},
			{"branchFilters": []}
		]
	}`), &d)
	if err != nil {
		t.Fatal(err)
	}
	want := []DefinitionTriggerType{DefinitionTriggerTypeContinuousIntegration, DefinitionTriggerTypeSchedule}
	if diff := cmp.Diff(want, d.TriggerTypes()); diff != "" {
		t.Errorf("TriggerTypes() mismatch (-want +got):\n%s", diff)
	}
	if d.ID != 1 {
		t.Errorf("ID = %d, want 1", d.ID)
	}
}

func TestDefinitionTypeInfoInheritsReference(t *testing.T) {
	for _, name := range []string{"createdDate", "project", "latestBuild", "quality", "jobAuthorizationScope"} {
		if BuildDefinitionTypeInfo.Fields[name] == nil {
			t.Errorf("BuildDefinitionTypeInfo missing %q", name)
		}
	}
	if BuildDefinitionReferenceTypeInfo.Fields["jobAuthorizationScope"] != nil {
		t.Error("BuildDefinitionReferenceTypeInfo has jobAuthorizationScope")
	}
}
