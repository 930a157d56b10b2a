package common

import (
	"encoding/json"
	"testing"
)

func TestDateJSON(t *testing.T) {
	var v struct {
		D *Date `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"d":"2024-02-29"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.D.Format(DateLayout) != "2024-02-29" {
		t.Fatalf("unexpected date %v", v.D)
	}
	out, _ := json.Marshal(v)
	if string(out) != `{"d":"2024-02-29"}` {
		t.Fatalf("unexpected json %s", out)
	}
	if err := json.Unmarshal([]byte(`{"d":"2024-02-29T23:10:00+02:00"}`), &v); err != nil || v.D.Day() != 29 {
		t.Fatalf("rfc3339 input: %v %v", v.D, err)
	}
	if err := json.Unmarshal([]byte(`{"d":"29/02/2024"}`), &v); err == nil {
		t.Fatalf("expected parse error")
	}
}
