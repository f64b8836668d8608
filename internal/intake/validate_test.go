package intake

import "testing"

func TestValidZip(t *testing.T) {
	valid := []string{"78701", " 02108 ", "00501"}
	invalid := []string{"", "1234", "123456", "7870a", "78701-2345"}
	for _, v := range valid {
		if !ValidZip(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	for _, v := range invalid {
		if ValidZip(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestValidPhone_CountsDigitsOnly(t *testing.T) {
	if !ValidPhone("(512) 555-0184") {
		t.Fatal("formatted 10-digit number should pass")
	}
	if ValidPhone("555-0184") {
		t.Fatal("7-digit number should fail")
	}
}

func TestParseMoveDate_AcceptsBothFormats(t *testing.T) {
	if _, ok := ParseMoveDate("2026-10-15"); !ok {
		t.Fatal("plain date rejected")
	}
	if _, ok := ParseMoveDate("2026-10-15T09:30:00Z"); !ok {
		t.Fatal("RFC 3339 timestamp rejected")
	}
	if _, ok := ParseMoveDate("10/15/2026"); ok {
		t.Fatal("US-style date should be rejected")
	}
	if _, ok := ParseMoveDate(""); ok {
		t.Fatal("empty date should be rejected")
	}
}

func TestParseYesNo(t *testing.T) {
	cases := map[string]bool{"yes": true, "Y": true, "TRUE": true, "no": false, "n": false, "false": false}
	for in, want := range cases {
		got, ok := ParseYesNo(in)
		if !ok || got != want {
			t.Fatalf("%q: expected %v, got %v (ok=%v)", in, want, got, ok)
		}
	}
	if _, ok := ParseYesNo("maybe"); ok {
		t.Fatal("expected non-answer to be rejected")
	}
}
