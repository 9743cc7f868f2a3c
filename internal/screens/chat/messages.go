package chat

// replyMsg carries the agent's answer for one user turn.
type replyMsg struct {
	Reply string
	Err   error
}

// moduleCompletedMsg reports the outcome of applying a quiz result to
// the plan and profile.
type moduleCompletedMsg struct {
	ModuleTitle string
	Score       float64
	Unlocked    string
	Err         error
}

// chatMessage is one rendered line of conversation.
type chatMessage struct {
	FromUser bool
	Text     string
}
