package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixil98/text-adventure/internal/game"
)

// CommandFunc is the signature for compiled command functions.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// CommandContext is everything a command function needs for one turn.
type CommandContext struct {
	Session *game.Session
	Verb    string            // the word the player typed, lower-cased
	Arg     string            // the rest of the line, single spaced
	Config  map[string]string // the command's handler config
	Result  *Result
}

// Result tells the turn loop what to do after a command.
type Result struct {
	Refresh bool // clear the screen before showing the room again
	Quit    bool // end the session
}

// HandlerFactory creates CommandFuncs from command configurations.
type HandlerFactory interface {
	// ValidateConfig validates that the config contains required fields.
	ValidateConfig(config map[string]string) error
	// Create creates a CommandFunc.
	Create() (CommandFunc, error)
}

// Publisher delivers text to the player.
type Publisher interface {
	Publish(data []byte) error
}

// compiledCommand holds a command that's been validated and compiled.
type compiledCommand struct {
	name    string
	cmd     *Command
	cmdFunc CommandFunc
}

type Handler struct {
	commands  map[string]*Command
	factories map[string]HandlerFactory
	compiled  map[string]*compiledCommand // keyed by name and every alias
	publisher Publisher
}

func NewHandler(cmds map[string]*Command, publisher Publisher) *Handler {
	h := &Handler{
		commands:  cmds,
		factories: make(map[string]HandlerFactory),
		compiled:  make(map[string]*compiledCommand),
		publisher: publisher,
	}
	// Register built-in handlers
	h.RegisterFactory("move", NewMoveHandlerFactory(publisher))
	h.RegisterFactory("inventory", NewInventoryHandlerFactory(publisher))
	h.RegisterFactory("take", NewTakeHandlerFactory(publisher))
	h.RegisterFactory("use", NewUseHandlerFactory(publisher))
	h.RegisterFactory("look", NewLookHandlerFactory(publisher))
	h.RegisterFactory("help", NewHelpHandlerFactory(cmds, publisher))
	h.RegisterFactory("quit", NewQuitHandlerFactory())
	return h
}

// RegisterFactory registers a handler factory by name.
// The name must match the Handler field of a Command.
func (h *Handler) RegisterFactory(name string, factory HandlerFactory) error {
	if name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("handler factory cannot be nil")
	}
	if _, exists := h.factories[name]; exists {
		return fmt.Errorf("handler factory %q already registered", name)
	}
	h.factories[name] = factory
	return nil
}

// CompileAll compiles every command.
// Call this after all handler factories have been registered.
func (h *Handler) CompileAll() error {
	for name, cmd := range h.commands {
		err := h.compile(name, cmd)
		if err != nil {
			return fmt.Errorf("compiling command %q: %w", name, err)
		}
	}
	return nil
}

func (h *Handler) compile(name string, cmd *Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	factory, ok := h.factories[cmd.Handler]
	if !ok {
		return fmt.Errorf("unknown handler %q", cmd.Handler)
	}

	if err := factory.ValidateConfig(cmd.Config); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	cmdFunc, err := factory.Create()
	if err != nil {
		return fmt.Errorf("creating handler: %w", err)
	}

	compiled := &compiledCommand{
		name:    name,
		cmd:     cmd,
		cmdFunc: cmdFunc,
	}

	for _, verb := range append([]string{name}, cmd.Aliases...) {
		verb = strings.ToLower(verb)
		if other, exists := h.compiled[verb]; exists {
			return fmt.Errorf("verb %q is already used by %q", verb, other.name)
		}
		h.compiled[verb] = compiled
	}
	return nil
}

// Exec runs one line of player input against the session. Problems with the
// input are published to the player and are not returned; an error means
// the session can't continue.
func (h *Handler) Exec(ctx context.Context, sess *game.Session, line string) (Result, error) {
	result := &Result{}

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return *result, nil
	}

	verb := strings.ToLower(parts[0])
	arg := strings.Join(parts[1:], " ")

	slog.Debug("executing command", "session", sess.ID, "verb", verb, "arg", arg)

	err := h.run(ctx, sess, verb, arg, result)
	if err != nil {
		var userErr *UserError
		if errors.As(err, &userErr) {
			return *result, h.publish(userErr.Message)
		}
		return *result, fmt.Errorf("executing %q: %w", verb, err)
	}

	return *result, nil
}

func (h *Handler) run(ctx context.Context, sess *game.Session, verb, arg string, result *Result) error {
	compiled, ok := h.compiled[verb]
	if !ok {
		return NewUserError(msgUnknownCommand)
	}

	if in := compiled.cmd.Input; in != nil && in.Required && arg == "" {
		return NewUserError(in.Missing)
	}

	return compiled.cmdFunc(ctx, &CommandContext{
		Session: sess,
		Verb:    verb,
		Arg:     arg,
		Config:  compiled.cmd.Config,
		Result:  result,
	})
}

func (h *Handler) publish(msg string) error {
	if h.publisher == nil {
		return nil
	}
	return h.publisher.Publish([]byte(msg))
}

// send publishes lines to the player as one message.
func send(pub Publisher, lines ...string) error {
	if pub == nil {
		return nil
	}
	return pub.Publish([]byte(strings.Join(lines, "\n")))
}
