package counter

import "testing"

func newValueField(value int) *TextCommit {
	return NewTextCommit(value, 0, 999, DigitsFor(0, 999), ValueCommitDelay)
}

func TestDigitsFor(t *testing.T) {
	tests := []struct {
		lo, hi int
		want   int
	}{
		{0, 999, 4},
		{-50, 9, 4},
		{0, 9, 2},
		{MaxYear, MaxYear, 5},
		{12, 12, 3},
	}
	for _, tt := range tests {
		if got := DigitsFor(tt.lo, tt.hi); got != tt.want {
			t.Fatalf("DigitsFor(%d, %d) = %d, want %d", tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestTextCommit_EagerCommit(t *testing.T) {
	tc := newValueField(12)

	res := tc.Input("5")
	if res.Outcome != OutcomeCommitted {
		t.Fatalf("Outcome = %v, want committed", res.Outcome)
	}
	if res.Value != 5 || !res.Changed {
		t.Fatalf("Value=%d Changed=%v, want 5 true", res.Value, res.Changed)
	}
	if res.Arm != 0 {
		t.Fatalf("Arm = %v, want no timer", res.Arm)
	}
	if tc.Committed() != 5 || tc.Pending() {
		t.Fatalf("Committed=%d Pending=%v, want 5 false", tc.Committed(), tc.Pending())
	}
	if !tc.Editing() || tc.Text() != "5" {
		t.Fatalf("Editing=%v Text=%q, want true %q", tc.Editing(), tc.Text(), "5")
	}
}

func TestTextCommit_RevertOnTimeout(t *testing.T) {
	tc := newValueField(12)

	res := tc.Input("-")
	if res.Outcome != OutcomeBuffered {
		t.Fatalf("Outcome = %v, want buffered", res.Outcome)
	}
	if res.Arm != ValueCommitDelay {
		t.Fatalf("Arm = %v, want %v", res.Arm, ValueCommitDelay)
	}
	if tc.Committed() != 12 || tc.Text() != "-" {
		t.Fatalf("Committed=%d Text=%q, want 12 %q", tc.Committed(), tc.Text(), "-")
	}

	exp := tc.Expire(res.Seq)
	if exp.Outcome != OutcomeReverted || exp.Value != 12 {
		t.Fatalf("Expire = %+v, want reverted to 12", exp)
	}
	if tc.Text() != "12" || tc.Editing() || tc.Pending() {
		t.Fatalf("after revert Text=%q Editing=%v Pending=%v", tc.Text(), tc.Editing(), tc.Pending())
	}
}

func TestTextCommit_NewerKeystrokeSupersedesTimer(t *testing.T) {
	tc := newValueField(12)

	first := tc.Input("-")
	second := tc.Input("-4")
	if second.Seq == first.Seq {
		t.Fatalf("second keystroke reused sequence %d", first.Seq)
	}

	if res := tc.Expire(first.Seq); res.Outcome != OutcomeIgnored {
		t.Fatalf("stale Expire = %v, want ignored", res.Outcome)
	}
	if !tc.Pending() || tc.Text() != "-4" {
		t.Fatalf("stale timer disturbed the edit: Pending=%v Text=%q", tc.Pending(), tc.Text())
	}
	if res := tc.Expire(second.Seq); res.Outcome != OutcomeReverted {
		t.Fatalf("current Expire = %v, want reverted", res.Outcome)
	}
}

func TestTextCommit_EarlyCommitCancelsTimer(t *testing.T) {
	tc := newValueField(12)

	armed := tc.Input("")
	if armed.Outcome != OutcomeBuffered {
		t.Fatalf("empty text Outcome = %v, want buffered", armed.Outcome)
	}
	if res := tc.Input("7"); res.Outcome != OutcomeCommitted {
		t.Fatalf("Outcome = %v, want committed", res.Outcome)
	}
	if res := tc.Expire(armed.Seq); res.Outcome != OutcomeIgnored {
		t.Fatalf("Expire after early commit = %v, want ignored", res.Outcome)
	}
	if tc.Committed() != 7 {
		t.Fatalf("Committed = %d, want 7", tc.Committed())
	}
}

func TestTextCommit_RejectsNonNumeric(t *testing.T) {
	tests := []string{"1a", "--", "1-", " 1", "+3", "x"}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			tc := newValueField(12)
			res := tc.Input(text)
			if res.Outcome != OutcomeRejected {
				t.Fatalf("Input(%q) = %v, want rejected", text, res.Outcome)
			}
			if tc.Text() != "12" || tc.Editing() || tc.Pending() {
				t.Fatalf("rejected keystroke changed state: Text=%q Editing=%v Pending=%v", tc.Text(), tc.Editing(), tc.Pending())
			}
		})
	}
}

func TestTextCommit_RejectedKeystrokeKeepsTimer(t *testing.T) {
	tc := newValueField(12)
	armed := tc.Input("-")
	tc.Input("-x")

	if res := tc.Expire(armed.Seq); res.Outcome != OutcomeReverted {
		t.Fatalf("Expire = %v, want reverted", res.Outcome)
	}
}

func TestTextCommit_WrapsAtMaxDigits(t *testing.T) {
	tc := newValueField(12)

	res := tc.Input("1234")
	if res.Outcome != OutcomeCommitted || res.Value != 4 {
		t.Fatalf("Input(1234) = %+v, want committed 4", res)
	}
	if tc.Text() != "4" {
		t.Fatalf("Text = %q, want %q", tc.Text(), "4")
	}
}

func TestTextCommit_WrapOutOfRangeWaits(t *testing.T) {
	tc := NewTextCommit(50, 10, 99, DigitsFor(10, 99), ValueCommitDelay)

	res := tc.Input("123")
	if res.Outcome != OutcomeBuffered || tc.Text() != "3" {
		t.Fatalf("Input(123) = %v Text=%q, want buffered %q", res.Outcome, tc.Text(), "3")
	}
}

func TestTextCommit_BlurNormalizesCommittedText(t *testing.T) {
	tc := newValueField(12)
	tc.Input("05")
	if tc.Committed() != 5 || tc.Text() != "05" {
		t.Fatalf("Committed=%d Text=%q, want 5 %q", tc.Committed(), tc.Text(), "05")
	}

	res := tc.Blur()
	if res.Outcome != OutcomeCommitted || res.Changed {
		t.Fatalf("Blur = %+v, want committed without change", res)
	}
	if tc.Text() != "5" || tc.Editing() {
		t.Fatalf("Text=%q Editing=%v, want %q false", tc.Text(), tc.Editing(), "5")
	}
}

func TestTextCommit_BlurRevertsInvalid(t *testing.T) {
	tc := NewTextCommit(50, 10, 99, DigitsFor(10, 99), ValueCommitDelay)
	armed := tc.Input("5")

	res := tc.Blur()
	if res.Outcome != OutcomeReverted || res.Value != 50 {
		t.Fatalf("Blur = %+v, want reverted to 50", res)
	}
	if r := tc.Expire(armed.Seq); r.Outcome != OutcomeIgnored {
		t.Fatalf("Expire after blur = %v, want ignored", r.Outcome)
	}
}

func TestTextCommit_BlurWithoutEditIsIgnored(t *testing.T) {
	tc := newValueField(12)
	if res := tc.Blur(); res.Outcome != OutcomeIgnored {
		t.Fatalf("Blur = %v, want ignored", res.Outcome)
	}
}

func TestTextCommit_SyncDropsEdit(t *testing.T) {
	tc := newValueField(12)
	armed := tc.Input("-")

	tc.Sync(40)
	if tc.Text() != "40" || tc.Committed() != 40 || tc.Editing() {
		t.Fatalf("after Sync Text=%q Committed=%d Editing=%v", tc.Text(), tc.Committed(), tc.Editing())
	}
	if res := tc.Expire(armed.Seq); res.Outcome != OutcomeIgnored {
		t.Fatalf("Expire after Sync = %v, want ignored", res.Outcome)
	}
}

func TestTextCommit_SetBoundsNarrowsAcceptedRange(t *testing.T) {
	tc := NewTextCommit(15, 1, 31, DigitsFor(31, 31), DateCommitDelay)
	tc.SetBounds(1, 28)

	res := tc.Input("30")
	if res.Outcome != OutcomeBuffered || res.Arm != DateCommitDelay {
		t.Fatalf("Input(30) = %+v, want buffered with %v", res, DateCommitDelay)
	}
}

func TestTextCommit_EagerWidthHoldsShortText(t *testing.T) {
	tc := NewTextCommit(2024, MinYear, MaxYear, DigitsFor(MaxYear, MaxYear), DateCommitDelay)
	tc.SetEagerWidth(4)

	var last Result
	for _, text := range []string{"2", "20", "202"} {
		last = tc.Input(text)
		if last.Outcome != OutcomeBuffered {
			t.Fatalf("Input(%q) = %v, want buffered", text, last.Outcome)
		}
		if tc.Committed() != 2024 {
			t.Fatalf("Input(%q) committed %d early", text, tc.Committed())
		}
	}

	res := tc.Input("2023")
	if res.Outcome != OutcomeCommitted || res.Value != 2023 {
		t.Fatalf("Input(2023) = %+v, want committed 2023", res)
	}
	if got := tc.Expire(last.Seq); got.Outcome != OutcomeIgnored {
		t.Fatalf("Expire of superseded timer = %v, want ignored", got.Outcome)
	}
}

func TestTextCommit_EagerWidthBlurCommitsShortText(t *testing.T) {
	tc := NewTextCommit(10, 1, 31, DigitsFor(31, 31), DateCommitDelay)
	tc.SetEagerWidth(2)

	if res := tc.Input("7"); res.Outcome != OutcomeBuffered {
		t.Fatalf("Input(7) = %v, want buffered", res.Outcome)
	}
	res := tc.Blur()
	if res.Outcome != OutcomeCommitted || res.Value != 7 || !res.Changed {
		t.Fatalf("Blur = %+v, want committed 7", res)
	}
}
