package quizplay

// feedbackDoneMsg is sent when the learner dismisses the answer feedback.
type feedbackDoneMsg struct{}

// quizDoneMsg is sent to trigger the end-of-quiz flow.
type quizDoneMsg struct{}
