package i18n

import "testing"

func TestMatch(t *testing.T) {
	cases := map[string]string{
		"":            "en",
		"C":           "en",
		"hu":          "hu",
		"hu_HU.UTF-8": "hu",
		"en_US.UTF-8": "en",
		"de_DE":       "en",
		"not a tag":   "en",
	}
	for in, want := range cases {
		if got := Match(in).String(); got != want {
			t.Fatalf("Match(%q) = %q want %q", in, got, want)
		}
	}
}

func TestTranslator_LanguagesAndFallback(t *testing.T) {
	en := New("en")
	hu := New("hu")
	if got := en.T(TasksNoDesc); got != "No description" {
		t.Fatalf("en: %q", got)
	}
	if got := hu.T(TasksNoDesc); got != "Nincs leírás" {
		t.Fatalf("hu: %q", got)
	}
	if got := hu.T(TasksCount, 3, 1); got != "3 feladat, 1 kész" {
		t.Fatalf("hu plural-free count: %q", got)
	}
	if got := New("fr").Lang(); got != "en" {
		t.Fatalf("expected english fallback, got %q", got)
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for k := range english {
		if _, ok := hungarian[k]; !ok {
			t.Fatalf("hungarian catalog missing %q", k)
		}
	}
	for k := range hungarian {
		if _, ok := english[k]; !ok {
			t.Fatalf("english catalog missing %q", k)
		}
	}
}

func TestDetect(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "hu_HU.UTF-8")
	if got := Detect(); got != "hu" {
		t.Fatalf("Detect() = %q", got)
	}
}
