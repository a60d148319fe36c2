package scoring

import (
	"errors"
	"testing"
)

func TestNormalizeHandle(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  @JohnDoe  ", "johndoe"},
		{"@@double", "@double"}, // only one leading @ is stripped
		{"plain", "plain"},
		{"@", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := NormalizeHandle(c.in); got != c.want {
			t.Fatalf("NormalizeHandle(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestHashHandleKnownValue(t *testing.T) {
	// "abc": 0*31+97=97, 97*31+98=3105, 3105*31+99=96354
	if got := hashHandle("abc"); got != 96354 {
		t.Fatalf("hashHandle(abc)=%d, want 96354", got)
	}
}

func TestHashHandleWrapsAt32Bits(t *testing.T) {
	// A long handle overflows int32 on the way through; the result must
	// still be a stable non-negative value below 2^31 inclusive.
	h := hashHandle("averyveryverylongusernamehandle")
	if h < 0 || h > 1<<31 {
		t.Fatalf("hashHandle out of 32-bit abs range: %d", h)
	}
	if h != hashHandle("averyveryverylongusernamehandle") {
		t.Fatal("hashHandle not deterministic")
	}
}

func TestScoreUsernameKnownValue(t *testing.T) {
	// "abc": age = 5 +3 (short) +2 (no digits) = 10; hash%16 = 96354%16 = 2
	// score = 80 + 50 + 2 = 132 => High
	result, err := ScoreUsername("@abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AgeScore != 10 {
		t.Fatalf("ageScore=%d, want 10", result.AgeScore)
	}
	if result.Score != 132 {
		t.Fatalf("score=%d, want 132", result.Score)
	}
	if result.Category != "High" {
		t.Fatalf("category=%q, want High", result.Category)
	}
}

func TestScoreUsernameDeterministic(t *testing.T) {
	first, err := ScoreUsername("Some_User42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, _ := ScoreUsername("Some_User42")
		if again != first {
			t.Fatalf("run %d: got %+v, want %+v", i, again, first)
		}
	}
}

func TestScoreUsernameRange(t *testing.T) {
	handles := []string{
		"a", "xyzzy", "user_1234", "qwrtpsdfgh", "thisisaverylonghandleindeed",
		"@CoolGuy", "n00b", "zz", "perfectlynormal", "x9",
	}
	for _, h := range handles {
		result, err := ScoreUsername(h)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", h, err)
		}
		if result.Score < 85 || result.Score > 145 {
			t.Fatalf("%q: score %d outside [85,145]", h, result.Score)
		}
		if result.AgeScore < 1 || result.AgeScore > 10 {
			t.Fatalf("%q: ageScore %d outside [1,10]", h, result.AgeScore)
		}
	}
}

func TestScoreUsernameEmpty(t *testing.T) {
	for _, h := range []string{"", "   ", "@", " @ "} {
		if _, err := ScoreUsername(h); !errors.Is(err, ErrEmptyHandle) {
			t.Fatalf("%q: got err=%v, want ErrEmptyHandle", h, err)
		}
	}
}

func TestEstimateAgeScoreRules(t *testing.T) {
	cases := []struct {
		handle string
		want   int
	}{
		{"abc", 10},         // 5+3+2
		{"abcdef", 7},       // 5+2, no short bonus at length 6
		{"ab1", 6},          // 5+3-2 (1-3 digits)
		{"a1234", 3},        // 5+3-3 (4+ digits) -2 ("1234" is a 4-run of non-vowels)
		{"ab_cd", 7},        // 5+3+2-1 (underscore) -2 ("b_cd" is a 4-run of non-vowels)
		{"bcdfg", 8},        // 5+3+2-2 (consonant run of 5)
		{"aaaaaaaaaaaaa", 5}, // 5+2-2 (length 13 > 12)
		{"_1234567890123", 1}, // 5-3-1-2 = -1, clamped to 1
	}
	for _, c := range cases {
		if got := estimateAgeScore(c.handle); got != c.want {
			t.Fatalf("estimateAgeScore(%q)=%d, want %d", c.handle, got, c.want)
		}
	}
}

func TestUsernameTierBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{145, "Genius"},
		{136, "Genius"},
		{135, "High"},
		{121, "High"},
		{120, "Smart"},
		{106, "Smart"},
		{105, "Average"},
		{90, "Average"},
		{89, "Low"},
	}
	for _, c := range cases {
		if got, _ := usernameTier(c.score); got != c.want {
			t.Fatalf("usernameTier(%d)=%q, want %q", c.score, got, c.want)
		}
	}
}
