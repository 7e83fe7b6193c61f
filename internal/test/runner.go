package itst

import (
	"strings"
	"testing"
)

// SkipTest skips the named subtests. Names use spaces instead of the
// underscores testing substitutes in, and may carry a ".Runner" suffix
// to target a single runner.
func SkipTest(testNames ...string) func(*testing.T) {
	var subTestName = strings.NewReplacer(" ", "_")

	return func(t *testing.T) {
		t.Helper()

		have := strings.SplitN(t.Name(), "/", 2)[1]
		suffix := strings.Split(have, ".")[1]

		for _, testName := range testNames {
			want := subTestName.Replace(testName)
			if !strings.Contains(want, ".") {
				want += "." + suffix
			}
			if have == want {
				t.SkipNow()
			}
		}
	}
}

// DoNotTest skips every subtest that ends with one of the given runner
// suffixes, no matter which table entry it came from.
func DoNotTest(testSuffixes ...string) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()

		idx := strings.LastIndex(t.Name(), ".")
		for _, suffix := range testSuffixes {
			if t.Name() == t.Name()[:idx]+"."+suffix {
				t.SkipNow()
			}
		}
	}
}
