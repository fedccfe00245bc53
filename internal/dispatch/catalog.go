// Package dispatch maps "category.action" command names to handlers and
// converts every outcome into a command.Result.
package dispatch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mj1618/uibridge/internal/command"
)

// Param documents one entry of a command's parameter bag.
type Param struct {
	Name     string
	Type     string
	Required bool
	Doc      string
}

// Command is one registered, schema-documented unit of automation.
type Command struct {
	Name        string
	Description string
	Params      []Param
	Returns     map[string]string
	Example     command.Params
	// Quiet commands are not logged or counted.
	Quiet   bool
	Handler command.Handler
}

// Category is the part of the name before the first dot.
func (c *Command) Category() string {
	cat, _, _ := strings.Cut(c.Name, ".")
	return cat
}

// Help renders the command's schema entry.
func (c *Command) Help() map[string]any {
	params := make(map[string]any, len(c.Params))
	for _, p := range c.Params {
		desc := p.Type
		if p.Required {
			desc += " (required)"
		} else {
			desc += " (optional)"
		}
		if p.Doc != "" {
			desc += ": " + p.Doc
		}
		params[p.Name] = desc
	}
	returns := make(map[string]any, len(c.Returns))
	for k, v := range c.Returns {
		returns[k] = v
	}
	example := map[string]any{"command": c.Name}
	if len(c.Example) > 0 {
		example["params"] = map[string]any(c.Example)
	}
	return map[string]any{
		"description": c.Description,
		"params":      params,
		"returns":     returns,
		"example":     example,
	}
}

// Catalog holds the registered commands.
type Catalog struct {
	byName map[string]*Command
}

func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]*Command)}
}

// Register adds commands, rejecting malformed or duplicate names.
func (c *Catalog) Register(cmds ...Command) error {
	for i := range cmds {
		cmd := cmds[i]
		if err := ValidateName(cmd.Name); err != nil {
			return err
		}
		if cmd.Handler == nil {
			return fmt.Errorf("command %s has no handler", cmd.Name)
		}
		if _, dup := c.byName[cmd.Name]; dup {
			return fmt.Errorf("command %s registered twice", cmd.Name)
		}
		c.byName[cmd.Name] = &cmd
	}
	return nil
}

// MustRegister is Register that panics, for static command tables.
func (c *Catalog) MustRegister(cmds ...Command) {
	if err := c.Register(cmds...); err != nil {
		panic(err)
	}
}

func (c *Catalog) Lookup(name string) (*Command, bool) {
	cmd, ok := c.byName[name]
	return cmd, ok
}

func (c *Catalog) Len() int { return len(c.byName) }

// Names returns every command name, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for n := range c.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Commands returns the commands sorted by name.
func (c *Catalog) Commands() []*Command {
	out := make([]*Command, 0, len(c.byName))
	for _, n := range c.Names() {
		out = append(out, c.byName[n])
	}
	return out
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, cmd := range c.Commands() {
		if cat := cmd.Category(); !seen[cat] {
			seen[cat] = true
			cats = append(cats, cat)
		}
	}
	return cats
}

// Help returns the full catalog document.
func (c *Catalog) Help() command.Fields {
	cmds := make(map[string]any, len(c.byName))
	for name, cmd := range c.byName {
		cmds[name] = cmd.Help()
	}
	return command.Fields{
		"commands":   cmds,
		"count":      len(c.byName),
		"categories": c.Categories(),
	}
}

// ValidateName checks the category.action shape.
func ValidateName(name string) error {
	if name == "" {
		return command.Errorf(command.InvalidFormat, "Command cannot be empty")
	}
	cat, action, ok := strings.Cut(name, ".")
	if !ok || cat == "" || action == "" {
		return command.Errorf(command.InvalidFormat, "Command must be in format 'category.action'")
	}
	return nil
}
