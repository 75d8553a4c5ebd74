// Command bindata parses a byte stream against one of the schemas
// registered in this binary and prints the result, the way the teacher's
// glint CLI inspects a self-describing document — except here the schema
// is a Go-declared type name, not something recovered from the wire.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/binwire/bindata"
)

// Command is one bindata subcommand.
type Command interface {
	Name() string
	DefineFlags(fs *flag.FlagSet)
	Execute(args []string) error
}

// CommandRegistry holds every registered Command, keyed by name.
type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry() *CommandRegistry {
	r := &CommandRegistry{commands: make(map[string]Command)}
	r.Register(&SchemasCmd{})
	r.Register(&SnapshotCmd{})
	r.Register(&GetCmd{})
	return r
}

func (r *CommandRegistry) Register(cmd Command) { r.commands[cmd.Name()] = cmd }

func (r *CommandRegistry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

func (r *CommandRegistry) ExecuteCommand(name string, args []string) error {
	cmd, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	fs := flag.NewFlagSet(fmt.Sprintf("bindata %s", name), flag.ExitOnError)
	cmd.DefineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return cmd.Execute(fs.Args())
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: bindata <schemas|snapshot|get> [flags] [args...]")
		os.Exit(1)
	}
	registry := NewCommandRegistry()
	if err := registry.ExecuteCommand(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// SchemasCmd lists the type names registered in bindata.DefaultRegistry
// that this binary knows about.
type SchemasCmd struct{}

func (c *SchemasCmd) Name() string                    { return "schemas" }
func (c *SchemasCmd) DefineFlags(fs *flag.FlagSet)     {}
func (c *SchemasCmd) Execute(args []string) error {
	for _, name := range []string{"ip_header", "pascal_string"} {
		fmt.Println(name)
	}
	return nil
}

// SnapshotCmd reads stdin against --type and prints the resulting
// Snapshot as JSON, preserving struct field declaration order.
type SnapshotCmd struct {
	typeName string
}

func (c *SnapshotCmd) Name() string { return "snapshot" }

func (c *SnapshotCmd) DefineFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.typeName, "type", "", "registered type name (see `bindata schemas`)")
}

func (c *SnapshotCmd) Execute(args []string) error {
	n, err := readNode(c.typeName)
	if err != nil {
		return err
	}
	snap, err := n.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// GetCmd reads stdin against --type and prints the value at a single
// dotted/bracketed field path, e.g. "opts" or "header.data".
type GetCmd struct {
	typeName string
}

func (c *GetCmd) Name() string { return "get" }

func (c *GetCmd) DefineFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.typeName, "type", "", "registered type name (see `bindata schemas`)")
}

func (c *GetCmd) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: bindata get -type=<name> <field-path>")
	}
	n, err := readNode(c.typeName)
	if err != nil {
		return err
	}
	segs, err := parsePath(args[0])
	if err != nil {
		return err
	}
	v, err := walkPath(n, segs)
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

func readNode(typeName string) (bindata.Node, error) {
	if typeName == "" {
		return nil, fmt.Errorf("-type is required")
	}
	factory, err := bindata.Lookup(typeName, bindata.BigEndian, false, nil)
	if err != nil {
		return nil, err
	}
	n, err := factory(nil)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	if err := bindata.ReadFromBytes(n, data); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return n, nil
}

// walkPath descends n through segs, resolving named segments against
// *bindata.Struct.Field and index segments against *bindata.Array.At,
// then returns the leaf node's Snapshot.
func walkPath(n bindata.Node, segs []pathSegment) (any, error) {
	cur := n
	for _, seg := range segs {
		if seg.isIdx {
			arr, ok := cur.(*bindata.Array)
			if !ok {
				return nil, fmt.Errorf("[%d]: not an array", seg.index)
			}
			child, ok := arr.At(seg.index)
			if !ok {
				return nil, fmt.Errorf("[%d]: index out of range", seg.index)
			}
			cur = child
			continue
		}
		st, ok := cur.(*bindata.Struct)
		if !ok {
			return nil, fmt.Errorf("%s: not a struct", seg.name)
		}
		child, ok := st.Field(seg.name)
		if !ok {
			return nil, fmt.Errorf("%s: no such field", seg.name)
		}
		cur = child
	}
	return cur.Snapshot()
}
