package calculator

import (
	"strings"
	"testing"

	"precinct/internal/penalcode"
)

func TestGroupReason_CountsAndOrder(t *testing.T) {
	lines := []Line{
		{LineID: "a", Item: kmItem(), Quantity: 2},
		{LineID: "b", Item: escalationItem(), Quantity: 1},
		{LineID: "c", Item: kmItem(), Quantity: 1},
	}

	reason := GroupReason(lines)
	if reason != "KM(x3), Hatóság akadályozása" {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestGroupReason_SingleCountHasNoSuffix(t *testing.T) {
	if reason := GroupReason([]Line{{LineID: "a", Item: kmItem(), Quantity: 1}}); reason != "KM" {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestBuildCommands_TicketDefaultsToMax(t *testing.T) {
	lines := []Line{{LineID: "a", Item: kmItem(), Quantity: 2}}
	sum := Summarize(lines, false)

	cmds := BuildCommands(lines, sum, CommandOptions{})

	if cmds.Fine != 2000 || cmds.Jail != 20 {
		t.Fatalf("expected max defaults, got %+v", cmds)
	}
	if cmds.Ticket != "/ticket [ID] 2000 KM(x2)" {
		t.Fatalf("unexpected ticket: %q", cmds.Ticket)
	}
	if cmds.Arrest != "/arrest [ID] 20 KM(x2)" {
		t.Fatalf("unexpected arrest: %q", cmds.Arrest)
	}
}

func TestBuildCommands_ClampsManualValues(t *testing.T) {
	lines := []Line{{LineID: "a", Item: kmItem(), Quantity: 1}}
	sum := Summarize(lines, false)

	low := -50
	high := 99999

	cmds := BuildCommands(lines, sum, CommandOptions{Fine: &low, Jail: &high})
	if cmds.Fine != sum.MinFine {
		t.Fatalf("low fine must clamp to min, got %d", cmds.Fine)
	}
	if cmds.Jail != sum.MaxJail {
		t.Fatalf("high jail must clamp to max, got %d", cmds.Jail)
	}
}

func TestBuildCommands_SuspectIDUsedWhenSet(t *testing.T) {
	lines := []Line{{LineID: "a", Item: kmItem(), Quantity: 1}}
	sum := Summarize(lines, false)

	cmds := BuildCommands(lines, sum, CommandOptions{SuspectID: "42"})
	if !strings.HasPrefix(cmds.Ticket, "/ticket 42 ") {
		t.Fatalf("unexpected ticket: %q", cmds.Ticket)
	}
}

func TestBuildCommands_AccompliceMarkerAppendedOnce(t *testing.T) {
	lines := []Line{
		{LineID: "a", Item: kmItem(), Quantity: 2},
		{LineID: "b", Item: escalationItem(), Quantity: 1},
	}
	sum := Summarize(lines, true)

	cmds := BuildCommands(lines, sum, CommandOptions{IsAccomplice: true})

	if strings.Count(cmds.Reason, "(bűnsegéd)") != 1 {
		t.Fatalf("accomplice marker must appear once at the end: %q", cmds.Reason)
	}
	if !strings.HasSuffix(cmds.Reason, "(bűnsegéd)") {
		t.Fatalf("accomplice marker must be a suffix: %q", cmds.Reason)
	}
}

func TestBuildCommands_ArrestOnlyFromJailableLines(t *testing.T) {
	// Fine-only item: no arrest command even with a manual jail value.
	item := kmItem()
	item.MinJail = penalcode.JailValue{}
	item.MaxJail = penalcode.JailValue{}

	lines := []Line{{LineID: "a", Item: item, Quantity: 1}}
	sum := Summarize(lines, false)

	manual := 30
	cmds := BuildCommands(lines, sum, CommandOptions{Jail: &manual})

	if cmds.Arrest != "" || cmds.ArrestReason != "" {
		t.Fatalf("arrest must be blocked without jailable lines: %+v", cmds)
	}
	if cmds.Ticket == "" {
		t.Fatal("ticket must still be produced")
	}
}

func TestBuildCommands_ArrestReasonFiltersLines(t *testing.T) {
	fineOnly := kmItem()
	fineOnly.MinJail = penalcode.JailValue{}
	fineOnly.MaxJail = penalcode.JailValue{}

	lines := []Line{
		{LineID: "a", Item: fineOnly, Quantity: 1},
		{LineID: "b", Item: escalationItem(), Quantity: 1},
	}
	sum := Summarize(lines, false)

	cmds := BuildCommands(lines, sum, CommandOptions{})

	if strings.Contains(cmds.ArrestReason, "KM") {
		t.Fatalf("fine-only charge leaked into arrest reason: %q", cmds.ArrestReason)
	}
	if !strings.Contains(cmds.ArrestReason, "Hatóság akadályozása") {
		t.Fatalf("jailable charge missing from arrest reason: %q", cmds.ArrestReason)
	}
}

func TestBuildCommands_EmptyCartYieldsEmptyState(t *testing.T) {
	cmds := BuildCommands(nil, Summary{}, CommandOptions{SuspectID: "42"})

	if cmds != (Commands{}) {
		t.Fatalf("empty cart must reset all outputs, got %+v", cmds)
	}
}

func TestBuildCommands_NoticeOnSpecialNotes(t *testing.T) {
	lines := []Line{{LineID: "a", Item: opaqueItem(), Quantity: 1}}
	sum := Summarize(lines, false)

	cmds := BuildCommands(lines, sum, CommandOptions{})
	want := "1 special penalty note(s) apply, check them before executing the sentence"
	if cmds.Notice != want {
		t.Fatalf("expected notice %q, got %q", want, cmds.Notice)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 10, 20) != 10 || Clamp(25, 10, 20) != 20 || Clamp(15, 10, 20) != 15 {
		t.Fatal("clamp misbehaves")
	}
}
