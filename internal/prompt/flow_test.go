package prompt

import (
	"strings"
	"testing"
)

func TestFlowDescriptionOpeningSlide(t *testing.T) {
	desc := FlowDescription(1, 5, "A warm curved line")
	if !strings.Contains(desc, "OPENING SLIDE (1 of 5)") {
		t.Errorf("missing opening header: %q", desc)
	}
	if !strings.Contains(desc, "A warm curved line") {
		t.Error("flow element not embedded")
	}
	if !strings.Contains(desc, "swipe") {
		t.Error("opening slide should include the swipe cue")
	}
}

func TestFlowDescriptionClosingSlide(t *testing.T) {
	desc := FlowDescription(5, 5, "A ribbon")
	if !strings.Contains(desc, "CLOSING SLIDE (5 of 5)") {
		t.Errorf("missing closing header: %q", desc)
	}
	if !strings.Contains(desc, "call-to-action") {
		t.Error("closing slide should reserve space for a call-to-action")
	}
}

func TestFlowDescriptionMiddleSlide(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		desc := FlowDescription(n, 5, "A line")
		if !strings.Contains(desc, "MIDDLE SLIDE") {
			t.Errorf("slide %d should be a middle slide: %q", n, desc)
		}
	}
}

func TestFlowDescriptionSingleSlideUsesOpening(t *testing.T) {
	desc := FlowDescription(1, 1, "A line")
	if !strings.Contains(desc, "OPENING SLIDE (1 of 1)") {
		t.Errorf("single-slide carousel should take the opening branch: %q", desc)
	}
}
