package agent

import "github.com/phanvu/reagent/llm"

// Role identifies who produced a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation transcript. Immutable once
// appended; order is significant and never changed.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered, append-only sequence of messages. It is the
// literal transcript replayed to the model every turn. Owned exclusively by
// one Agent; not safe for concurrent writers.
type Conversation struct {
	messages []Message
}

// NewConversation creates a Conversation, seeded with a system message when
// system is non-empty. The system message is always element 0 and there is
// at most one.
func NewConversation(system string) *Conversation {
	c := &Conversation{}
	if system != "" {
		c.messages = append(c.messages, Message{Role: RoleSystem, Content: system})
	}
	return c
}

// Append adds a message. Empty content is accepted; the core does not
// validate what the model or user supplies.
func (c *Conversation) Append(role Role, content string) {
	c.messages = append(c.messages, Message{Role: role, Content: content})
}

// Messages returns a copy of the transcript in order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// ToLLMMessages converts the transcript into the completion client's
// message type.
func (c *Conversation) ToLLMMessages() []llm.Message {
	out := make([]llm.Message, 0, len(c.messages))
	for _, m := range c.messages {
		out = append(out, llm.Message{Role: llm.Role(m.Role), Content: m.Content})
	}
	return out
}
