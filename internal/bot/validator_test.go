package bot

import (
	"strings"
	"testing"
)

func TestValidate_EventIsolation(t *testing.T) {
	verdict := Validate("Spoorthi is in Feb-Mar, register early!", "when is agility cup")
	if verdict.Valid {
		t.Fatal("response leaking spoorthi into an agility question must be rejected")
	}
	if !strings.Contains(verdict.Reason, "spoorthi") {
		t.Errorf("reason %q does not cite the offending keyword", verdict.Reason)
	}
}

func TestValidate_EventIsolationRegardlessOfLength(t *testing.T) {
	// Short and well within budget, still invalid.
	verdict := Validate("spoorthi", "tell me about agility")
	if verdict.Valid {
		t.Fatal("event isolation must fire before the length rule")
	}
}

func TestValidate_EventPriorityOrder(t *testing.T) {
	// Message naming two events: "agility" wins by fixed priority, so
	// mentioning marathon in the response is the violation reported.
	verdict := Validate("Marathon route details here", "agility or marathon?")
	if verdict.Valid {
		t.Fatal("expected invalid verdict")
	}
	if !strings.Contains(verdict.Reason, "marathon") || !strings.Contains(verdict.Reason, "agility") {
		t.Errorf("reason %q should cite marathon as offending and agility as asked", verdict.Reason)
	}
}

func TestValidate_SameEventAllowed(t *testing.T) {
	verdict := Validate("Agility Cup is open, make your team!", "when is agility cup")
	if !verdict.Valid {
		t.Fatalf("same-event response rejected: %s", verdict.Reason)
	}
}

func TestValidate_LengthBudget(t *testing.T) {
	long := strings.Repeat("x", 1300)

	if v := Validate(long, "give me detail about trials"); v.Valid {
		t.Error("1300 chars with 'detail' must be rejected (> 1200)")
	} else if !strings.Contains(v.Reason, "1200") {
		t.Errorf("reason %q does not cite the 1200 limit", v.Reason)
	}

	if v := Validate(long, "about trials"); v.Valid {
		t.Error("1300 chars without 'detail' must be rejected (> 800)")
	} else if !strings.Contains(v.Reason, "800") {
		t.Errorf("reason %q does not cite the 800 limit", v.Reason)
	}
}

func TestValidate_DetailRaisesBudget(t *testing.T) {
	medium := strings.Repeat("x", 1000)
	if v := Validate(medium, "explain in Detail please"); !v.Valid {
		t.Errorf("1000 chars with 'detail' should pass, got: %s", v.Reason)
	}
	if v := Validate(medium, "explain please"); v.Valid {
		t.Error("1000 chars without 'detail' must be rejected")
	}
}

func TestValidate_PlainAnswerPasses(t *testing.T) {
	if v := Validate("Basketball trials early Oct at Wadia court.", "basketball?"); !v.Valid {
		t.Fatalf("plain valid answer rejected: %s", v.Reason)
	}
}
