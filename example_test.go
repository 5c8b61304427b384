package tapigo

import (
	"errors"
	"os"
)

func ExampleSuite_RunTests() {
	suite := SetupTests(os.Stdout)
	suite.AddTest(MakeTest("addition works", nil, func() error { return nil }, nil))
	suite.AddTest(MakeTest("subtraction broken", nil, func() error {
		return errors.New("expected 2, got 3")
	}, nil))

	suite.RunTests()
	// Output:
	// [1/2] tapi: addition works, passed.
	// [1/2] tapi: subtraction broken, failed.
	// tapi; total tests passed: [1/2].
}
