package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phanvu/reagent/llm"
)

// MaxTurnsMessage is the answer returned when the loop exhausts its turn
// budget before the model produces a final reply.
const MaxTurnsMessage = "Agent reached maximum turns without a final answer."

const defaultMaxTurns = 5

// steeringTemplate frames each observation before it is fed back to the
// model. It restates the original question so later turns do not drift.
const steeringTemplate = "Observation: %s\n\n" +
	"Given the original user question: \"%s\", do ONE of the following:\n" +
	"- If the observation already contains the answer or enough data to compute it, respond immediately with `Answer: ...`.\n" +
	"- Otherwise, continue the ReAct loop with Thought → Action → PAUSE → Observation, and produce exactly ONE next Action.\n"

const repeatWarning = "\nWARNING: You are repeating the same action with the same input. " +
	"Do not run it again. Use the information you already have, try a different action, or answer now.\n"

// Invoker produces a model completion for an accumulated conversation.
// *llm.Client satisfies it; tests substitute scripted fakes.
type Invoker interface {
	Complete(ctx context.Context, req llm.Request) (*llm.Response, error)
}

// Config controls a single agent's model selection and loop behavior.
type Config struct {
	// Model is the model identifier sent with every request.
	Model string
	// Provider optionally pins the request to a named provider; when empty
	// the llm client resolves it from the model or its default.
	Provider string
	// MaxTurns bounds the number of model calls per Run. Defaults to 5.
	MaxTurns int
	// Temperature and MaxTokens pass through to the request when set.
	Temperature *float64
	MaxTokens   *int
	// SystemPrompt seeds the conversation. When empty, New generates one
	// from the registry with BuildSystemPrompt.
	SystemPrompt string
	// ObservationLimits overrides per-capability truncation budgets.
	// Nil means DefaultObservationLimits.
	ObservationLimits map[string]int
	// DetectRepeats enables warning injection when the model keeps
	// dispatching the same action with the same input.
	DetectRepeats bool
	// RepeatWindow is the number of trailing actions inspected for a
	// repeating pattern. Defaults to 4.
	RepeatWindow int
}

// Result is the outcome of a single Run.
type Result struct {
	// Answer is the model's final reply, or MaxTurnsMessage when the turn
	// budget ran out.
	Answer string
	// Turns is the number of model calls consumed.
	Turns int
	// BudgetExhausted reports whether Answer is the budget sentinel rather
	// than a model-produced reply.
	BudgetExhausted bool
}

// Agent runs the ReAct loop: it sends the conversation to the model,
// parses an Action line out of the reply, dispatches the matching
// capability, and feeds the observation back until the model answers
// without an action or the turn budget runs out.
//
// The conversation persists across Run calls, so follow-up questions see
// earlier exchanges. An Agent is not safe for concurrent Run calls.
type Agent struct {
	id       string
	cfg      Config
	invoker  Invoker
	registry *Registry
	conv     *Conversation
	emitter  *Emitter
	logger   *zap.Logger

	signatures []string
}

// Option configures an Agent at construction time.
type Option func(*Agent)

// WithLogger attaches a structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Agent) {
		a.logger = logger
	}
}

// WithEmitterBuffer sizes the event channel buffer.
func WithEmitterBuffer(n int) Option {
	return func(a *Agent) {
		a.emitter = NewEmitter(a.id, n)
	}
}

// New creates an Agent. The system prompt is generated from the registry
// when cfg.SystemPrompt is empty.
func New(invoker Invoker, registry *Registry, cfg Config, opts ...Option) *Agent {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = defaultMaxTurns
	}
	if cfg.RepeatWindow <= 0 {
		cfg.RepeatWindow = 4
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = BuildSystemPrompt(registry, time.Now())
	}
	a := &Agent{
		id:       uuid.New().String(),
		cfg:      cfg,
		invoker:  invoker,
		registry: registry,
		conv:     NewConversation(cfg.SystemPrompt),
		logger:   zap.NewNop(),
	}
	a.emitter = NewEmitter(a.id, 0)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() string {
	return a.id
}

// Conversation exposes the accumulated message history.
func (a *Agent) Conversation() *Conversation {
	return a.conv
}

// Events returns the agent's event channel.
func (a *Agent) Events() <-chan Event {
	return a.emitter.Events()
}

// Close releases the agent's event channel.
func (a *Agent) Close() {
	a.emitter.Close()
}

// Run drives the ReAct loop for one user question. It returns an error
// only on context cancellation; model failures and capability failures are
// absorbed into the conversation so the model can recover from them.
func (a *Agent) Run(ctx context.Context, question string) (Result, error) {
	a.emitter.Emit(EventRunStart, map[string]interface{}{"question": question})
	a.logger.Info("run start",
		zap.String("agent_id", a.id),
		zap.String("question", question),
		zap.Int("max_turns", a.cfg.MaxTurns))

	nextPrompt := question
	for turn := 1; turn <= a.cfg.MaxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return Result{Turns: turn - 1}, err
		}

		a.conv.Append(RoleUser, nextPrompt)
		a.emitter.Emit(EventUserPrompt, map[string]interface{}{"turn": turn, "content": nextPrompt})

		reply, err := a.execute(ctx)
		if err != nil {
			return Result{Turns: turn}, err
		}
		a.conv.Append(RoleAssistant, reply)
		a.emitter.Emit(EventAssistantReply, map[string]interface{}{"turn": turn, "content": reply})
		a.logger.Debug("assistant reply", zap.Int("turn", turn), zap.String("content", reply))

		action := ParseAction(reply)
		if action == nil {
			a.emitter.Emit(EventFinalAnswer, map[string]interface{}{"turn": turn, "answer": reply})
			a.emitter.Emit(EventRunEnd, map[string]interface{}{"turns": turn})
			a.logger.Info("run complete", zap.Int("turns", turn))
			return Result{Answer: reply, Turns: turn}, nil
		}

		observation, err := a.dispatch(ctx, turn, action)
		if err != nil {
			return Result{Turns: turn}, err
		}

		nextPrompt = fmt.Sprintf(steeringTemplate, observation, question)
		if a.noteRepeat(action) {
			a.emitter.Emit(EventRepeatWarning, map[string]interface{}{
				"turn":   turn,
				"action": action.Name,
			})
			a.logger.Warn("repeated action detected",
				zap.String("action", action.Name),
				zap.Int("turn", turn))
			nextPrompt += repeatWarning
		}
	}

	a.emitter.Emit(EventBudgetExhausted, map[string]interface{}{"max_turns": a.cfg.MaxTurns})
	a.emitter.Emit(EventRunEnd, map[string]interface{}{"turns": a.cfg.MaxTurns})
	a.logger.Warn("turn budget exhausted", zap.Int("max_turns", a.cfg.MaxTurns))
	return Result{Answer: MaxTurnsMessage, Turns: a.cfg.MaxTurns, BudgetExhausted: true}, nil
}

// execute sends the conversation to the model. A failed call becomes an
// assistant-visible error string instead of aborting the run; only context
// cancellation surfaces as an error.
func (a *Agent) execute(ctx context.Context) (string, error) {
	req := llm.Request{
		Model:       a.cfg.Model,
		Provider:    a.cfg.Provider,
		Messages:    a.conv.ToLLMMessages(),
		Temperature: a.cfg.Temperature,
		MaxTokens:   a.cfg.MaxTokens,
	}
	resp, err := a.invoker.Complete(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		a.emitter.Emit(EventError, map[string]interface{}{"error": err.Error()})
		a.logger.Error("model call failed", zap.Error(err))
		return fmt.Sprintf("Error during API call: %v", err), nil
	}
	return resp.Text, nil
}

// dispatch resolves and runs the capability named by the action. Unknown
// names and capability failures both become observations; the loop
// continues and lets the model correct itself.
func (a *Agent) dispatch(ctx context.Context, turn int, action *ActionRequest) (string, error) {
	a.emitter.Emit(EventActionDispatch, map[string]interface{}{
		"turn":     turn,
		"action":   action.Name,
		"argument": action.Argument,
	})
	a.logger.Info("dispatching action",
		zap.Int("turn", turn),
		zap.String("action", action.Name),
		zap.String("argument", action.Argument))

	var observation string
	c := a.registry.Get(action.Name)
	if c == nil {
		observation = fmt.Sprintf("Unknown action: %s. Available actions: %s.",
			action.Name, strings.Join(a.registry.Names(), ", "))
	} else {
		result, err := safeCall(ctx, c, action.Argument)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			observation = fmt.Sprintf("Error executing action %s: %v", action.Name, err)
		} else {
			observation = result
		}
	}

	observation = TruncateObservation(observation, action.Name, a.cfg.ObservationLimits)
	a.emitter.Emit(EventObservation, map[string]interface{}{
		"turn":        turn,
		"action":      action.Name,
		"observation": observation,
	})
	a.logger.Debug("observation",
		zap.String("action", action.Name),
		zap.Int("length", len(observation)))
	return observation, nil
}

// noteRepeat records the action signature and reports whether the trailing
// window now forms a repeating pattern.
func (a *Agent) noteRepeat(action *ActionRequest) bool {
	if !a.cfg.DetectRepeats {
		return false
	}
	a.signatures = append(a.signatures, actionSignature(action.Name, action.Argument))
	return DetectRepeat(a.signatures, a.cfg.RepeatWindow)
}
