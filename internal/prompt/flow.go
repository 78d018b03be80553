package prompt

import "fmt"

// FlowDescription returns the position-specific continuity instruction that
// makes consecutive slide images read as one panoramic composition.
//
// A single-slide carousel takes the opening branch: the slide-number check
// runs before the last-slide check, so total==1 never reaches the closing
// case.
func FlowDescription(slideNumber, totalSlides int, flowElement string) string {
	if slideNumber == 1 {
		return fmt.Sprintf(`
VISUAL FLOW POSITION: OPENING SLIDE (1 of %d)
- %s ORIGINATES from the LEFT edge of the composition
- The element should flow gracefully toward the RIGHT edge
- Create a sense of beginning - the visual journey starts here
- Element should EXIT toward the right edge, inviting viewers to swipe
- Include a subtle "swipe" visual cue in bottom area`, totalSlides, flowElement)
	}

	if slideNumber == totalSlides {
		return fmt.Sprintf(`
VISUAL FLOW POSITION: CLOSING SLIDE (%d of %d)
- %s ENTERS from the LEFT edge (continuing from previous slide)
- The element should CONCLUDE gracefully in the center or right area
- Create a sense of completion and resolution
- Include visual space for a call-to-action message
- Design should feel like a satisfying ending to the visual journey`, slideNumber, totalSlides, flowElement)
	}

	return fmt.Sprintf(`
VISUAL FLOW POSITION: MIDDLE SLIDE (%d of %d)
- %s ENTERS from the LEFT edge (continuing from previous slide)
- The element should flow ACROSS the composition
- Element EXITS toward the RIGHT edge (continuing to next slide)
- Maintain visual rhythm and momentum
- Keep the flowing element at roughly the same vertical position for continuity`, slideNumber, totalSlides, flowElement)
}
