package docstore_test

import (
	"reflect"
	"testing"

	"github.com/Freeeeeet/tutorhub_bot/internal/docstore"
)

func TestApplyFields_TopLevel(t *testing.T) {
	data := map[string]interface{}{"jobTitle": "Math tutor", "hourlyRate": 2000}
	docstore.ApplyFields(data, map[string]interface{}{"hourlyRate": 2500})

	if data["hourlyRate"] != 2500 {
		t.Errorf("hourlyRate = %v, want 2500", data["hourlyRate"])
	}
	if data["jobTitle"] != "Math tutor" {
		t.Error("untouched field must survive a partial update")
	}
}

func TestApplyFields_DotPathCreatesIntermediates(t *testing.T) {
	data := map[string]interface{}{}
	docstore.ApplyFields(data, map[string]interface{}{
		"hireRequests.hr-1.hourlyRate": 1800,
		"hireRequests.hr-1.status":     "pending",
	})

	want := map[string]interface{}{
		"hireRequests": map[string]interface{}{
			"hr-1": map[string]interface{}{
				"hourlyRate": 1800,
				"status":     "pending",
			},
		},
	}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("ApplyFields result = %#v, want %#v", data, want)
	}
}

func TestApplyFields_DotPathPreservesSiblings(t *testing.T) {
	data := map[string]interface{}{
		"hireRequests": map[string]interface{}{
			"hr-1": map[string]interface{}{"status": "pending"},
			"hr-2": map[string]interface{}{"status": "accepted"},
		},
	}
	docstore.ApplyFields(data, map[string]interface{}{"hireRequests.hr-1.status": "cancelled"})

	reqs := data["hireRequests"].(map[string]interface{})
	if reqs["hr-1"].(map[string]interface{})["status"] != "cancelled" {
		t.Error("targeted key not updated")
	}
	if reqs["hr-2"].(map[string]interface{})["status"] != "accepted" {
		t.Error("sibling document branch must not be rewritten")
	}
}

func TestApplyFields_NonMapIntermediateIsReplaced(t *testing.T) {
	data := map[string]interface{}{"meta": "plain string"}
	docstore.ApplyFields(data, map[string]interface{}{"meta.version": 2})

	meta, ok := data["meta"].(map[string]interface{})
	if !ok {
		t.Fatalf("meta = %#v, want nested map", data["meta"])
	}
	if meta["version"] != 2 {
		t.Errorf("meta.version = %v, want 2", meta["version"])
	}
}
