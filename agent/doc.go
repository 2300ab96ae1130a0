// Package agent implements a ReAct-style reasoning/acting loop.
//
// The loop sends a running conversation to a language model, interprets the
// reply as either a final answer or a request to invoke one named capability
// with a string argument, executes that capability, and feeds the result
// back into the conversation until an answer is produced or the turn budget
// is exhausted.
//
// # Architecture
//
// The package is organized around these core concepts:
//
//   - Agent: the orchestrator owning conversation state, dispatching
//     capability calls, emitting events, and enforcing the turn budget.
//   - Conversation: an append-only sequence of role-tagged messages replayed
//     to the model on every turn.
//   - ParseAction: the line-oriented grammar recognizing "Action: <name>:
//     <argument>" requests inside free-form model output.
//   - Registry: registration and lookup of named capabilities.
//   - Emitter: typed event stream for host application integration.
//
// # Quick Start
//
//	reg := agent.NewRegistry()
//	reg.Register(capability.NewCalculator())
//
//	a := agent.New(llm.NewClientFromEnv(), reg, agent.Config{Model: "gpt-5.2-mini"})
//	defer a.Close()
//
//	result, err := a.Run(ctx, "What is 25% of 160?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Answer)
package agent
