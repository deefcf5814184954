package qcli

import (
	"os"
	"strings"

	"github.com/napalu/qcli/errs"
)

func pruneExecPathFromArgs(args *[]string) {
	if len(*args) > 0 && len(os.Args) > 0 {
		if strings.EqualFold(os.Args[0], (*args)[0]) {
			*args = (*args)[1:]
		}
	}
}

// parseContext resolves one level of the tree. Errors are returned as raw as they
// occur; Parse attaches the chain once at the top.
func (p *Parser) parseContext(ctx *Context, args []string) error {
	if ctx.Len() == 0 {
		panic(errs.ErrEmptyContext.WithArgs(strings.Join(p.chain, "->")))
	}

	p.flat.ClearPositionalArguments()
	p.addOptions(ctx)
	p.declareCommands(ctx)

	// errors at context levels are ignored, only the leaf parse is authoritative
	if p.flat.Parse(args) && p.isBuiltinSet(VersionOptionName) {
		return nil
	}

	var next string
	if leftover := p.flat.PositionalArguments(); len(leftover) > 0 {
		next = leftover[0]
		if _, found := ctx.lookup(next); !found {
			return errs.ErrUnknownCommand.WithArgs(next)
		}
	} else {
		if p.isBuiltinSet(HelpOptionName) {
			return nil
		}
		if ctx.defaultNode == "" {
			return errs.ErrCommandRequired
		}
		next = ctx.defaultNode
	}

	p.chain = append(p.chain, next)
	args = removeOne(args, next)

	ch, _ := ctx.lookup(next)
	switch node := ch.node.(type) {
	case *Context:
		return p.parseContext(node, args)
	case *Leaf:
		return p.parseLeaf(node, args)
	default:
		return errs.ErrUnknownNodeType.WithArgs(node)
	}
}

func (p *Parser) parseLeaf(leaf *Leaf, args []string) error {
	p.flat.ClearPositionalArguments()
	p.addOptions(leaf)

	chain := strings.Join(p.chain, " ")
	if len(leaf.arguments) == 0 {
		p.flat.AddPositionalArgument(" ", " ", chain)
	} else {
		first := leaf.arguments[0]
		p.flat.AddPositionalArgument(first.Name, first.Description, chain+" "+first.Syntax)
		for _, arg := range leaf.arguments[1:] {
			p.flat.AddPositionalArgument(arg.Name, arg.Description, arg.Syntax)
		}
	}

	if !p.flat.Parse(args) {
		return &leafError{err: p.flat.Err()}
	}

	return nil
}

// declareCommands declares one positional placeholder per visible child. The first
// carries the synopsis of all of them, "<chain> {a|b}" or "<chain> [a|b]" when the
// context has a default.
func (p *Parser) declareCommands(ctx *Context) {
	names := ctx.names(false)
	if len(names) == 0 {
		return
	}

	prefix := strings.Join(p.chain, " ")
	if prefix != "" {
		prefix += " "
	}
	open, closing := "{", "}"
	if ctx.defaultNode != "" {
		open, closing = "[", "]"
	}
	synopsis := prefix + open + strings.Join(names, "|") + closing

	for i, name := range names {
		syntax := blankSyntax
		if i == 0 {
			syntax = synopsis
		}
		p.flat.AddPositionalArgument(p.commandLabel(ctx, name), ctx.Description(name), syntax)
	}
}

func (p *Parser) commandLabel(ctx *Context, name string) string {
	if name == ctx.defaultNode {
		return p.bundle.T(errs.MsgDefaultNodeKey, name)
	}

	return name
}

// addOptions stacks the options of n on top of those of the levels above. Options
// whose names were already declared higher up are skipped.
func (p *Parser) addOptions(n Node) {
	if err := p.flat.AddOptions(n.base().options...); err != nil {
		p.logger.Debug("option shadowed by an ancestor declaration", "error", err)
	}
}

func (p *Parser) isBuiltinSet(name string) bool {
	return p.flat.IsKnown(name) && p.flat.IsSet(name)
}

func (p *Parser) withChain(err error) error {
	return &ContextError{
		err:   err,
		chain: append([]string(nil), p.chain...),
		text:  p.bundle.T(errs.MsgCommandContextKey, err.Error(), strings.Join(p.chain, " -> ")),
	}
}

// removeOne returns args without the first occurrence of s.
func removeOne(args []string, s string) []string {
	for i, arg := range args {
		if arg == s {
			out := make([]string, 0, len(args)-1)
			out = append(out, args[:i]...)
			return append(out, args[i+1:]...)
		}
	}

	return args
}
