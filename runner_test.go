package tapigo

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRunTestsReportsPassFailSkip(t *testing.T) {
	var out bytes.Buffer
	suite := SetupTests(&out)

	suite.AddTest(MakeTest("ok", nil, func() error { return nil }, nil))
	suite.AddTest(MakeTest("broken", nil, func() error { return errors.New("boom") }, nil))
	suite.AddTest(MakeTest("no body", nil, nil, nil))

	passed := suite.RunTests()
	if passed != 1 {
		t.Errorf("passed = %d, want 1", passed)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out.String())
	}
	if lines[0] != "[1/3] tapi: ok, passed." {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "[1/3] tapi: broken, failed." {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lines[2] != "[1/3] tapi: no body, skipped." {
		t.Errorf("line 2 = %q", lines[2])
	}
	if lines[3] != "tapi; total tests passed: [1/3]." {
		t.Errorf("summary line = %q", lines[3])
	}
}

func TestRunTestsCallsSetupAndTeardown(t *testing.T) {
	var out bytes.Buffer
	suite := SetupTests(&out)

	var order []string
	test := MakeTest("sequenced",
		func() error { order = append(order, "setup"); return nil },
		func() error { order = append(order, "body"); return nil },
		func() { order = append(order, "teardown") },
	)
	suite.AddTest(test)
	suite.RunTests()

	want := []string{"setup", "body", "teardown"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestRunTestsTeardownRunsEvenOnFailure(t *testing.T) {
	var out bytes.Buffer
	suite := SetupTests(&out)

	tornDown := false
	test := MakeTest("fails",
		nil,
		func() error { return errors.New("fail") },
		func() { tornDown = true },
	)
	suite.AddTest(test)
	suite.RunTests()

	if !tornDown {
		t.Error("teardown did not run after a failing body")
	}
}

func TestDestroyTestsClearsSuite(t *testing.T) {
	suite := SetupTests(nil)
	suite.AddTest(MakeTest("a", nil, func() error { return nil }, nil))
	suite.DestroyTests()

	var out bytes.Buffer
	suite.out = &out
	if passed := suite.RunTests(); passed != 0 {
		t.Errorf("passed = %d, want 0 after DestroyTests", passed)
	}
}
