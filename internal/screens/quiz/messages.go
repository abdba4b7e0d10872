package quiz

import "time"

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// attemptDoneMsg triggers the hand-off to the results screen. Sent once:
// either the learner answered the last question or the timer expired.
type attemptDoneMsg struct{}
