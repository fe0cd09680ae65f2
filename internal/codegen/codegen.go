// Package codegen emits Go source that rebuilds a component tree with the
// public component and container packages.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"strconv"

	"mvdan.cc/gofumpt/format"

	"github.com/agentic-research/mosaic/component"
	"github.com/agentic-research/mosaic/container"
)

const (
	componentImport = "github.com/agentic-research/mosaic/component"
	containerImport = "github.com/agentic-research/mosaic/container"
)

var ErrUnsupported = errors.New("component type has no source form")

// Options names the generated package and builder function.
type Options struct {
	Package string // default "main"
	Func    string // default "Build"
}

func (o Options) withDefaults() (Options, error) {
	if o.Package == "" {
		o.Package = "main"
	}
	if o.Func == "" {
		o.Func = "Build"
	}
	if !token.IsIdentifier(o.Package) {
		return o, fmt.Errorf("invalid package name %q", o.Package)
	}
	if !token.IsIdentifier(o.Func) {
		return o, fmt.Errorf("invalid function name %q", o.Func)
	}
	return o, nil
}

type emitter struct {
	body         bytes.Buffer
	next         int
	useComponent bool
	useContainer bool
}

func (e *emitter) newVar(prefix string) string {
	v := prefix + strconv.Itoa(e.next)
	e.next++
	return v
}

func (e *emitter) widget(w component.Widget) string {
	e.useComponent = true
	return "component.NewWidget(" + strconv.Quote(w.Name()) + ")"
}

func (e *emitter) number(n component.Number) string {
	e.useComponent = true
	return "component.NewNumber(" + strconv.Itoa(n.Value()) + ")"
}

// PolySource returns formatted Go source whose builder function returns a
// *container.Container[container.Poly] equal in report to c.
func PolySource(c *container.Container[container.Poly], opts Options) ([]byte, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	e := &emitter{useContainer: true}
	root := e.poly(c)
	return e.finish(opts, "*container.Container[container.Poly]", root)
}

func (e *emitter) poly(c *container.Container[container.Poly]) string {
	v := e.newVar("c")
	fmt.Fprintf(&e.body, "%s := container.New[container.Poly]()\n", v)
	for _, p := range c.All() {
		if p == nil {
			continue
		}
		expr := container.Match(p,
			func(w component.Widget) string { return "container.OfWidget(" + e.widget(w) + ")" },
			func(n component.Number) string { return "container.OfNumber(" + e.number(n) + ")" },
			func(inner *container.Container[container.Poly]) string {
				return "container.OfContainer(" + e.poly(inner) + ")"
			},
		)
		fmt.Fprintf(&e.body, "%s.Add(%s)\n", v, expr)
	}
	return v
}

// WindowSource returns formatted Go source whose builder function returns a
// *component.Window equal in report to w. Only Widget, Number and *Window
// children can be expressed; anything else yields ErrUnsupported.
func WindowSource(w *component.Window, opts Options) ([]byte, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	e := &emitter{useComponent: true}
	root, err := e.window(w)
	if err != nil {
		return nil, err
	}
	return e.finish(opts, "*component.Window", root)
}

func (e *emitter) window(w *component.Window) (string, error) {
	v := e.newVar("w")
	fmt.Fprintf(&e.body, "%s := component.NewWindow()\n", v)
	for i := range w.Len() {
		var expr string
		switch child := w.Child(i).(type) {
		case nil:
			continue
		case component.Widget:
			expr = e.widget(child)
		case component.Number:
			expr = e.number(child)
		case *component.Window:
			inner, err := e.window(child)
			if err != nil {
				return "", err
			}
			expr = inner
		default:
			return "", fmt.Errorf("child %d: %T: %w", i, child, ErrUnsupported)
		}
		fmt.Fprintf(&e.body, "%s.AddComponent(%s)\n", v, expr)
	}
	return v, nil
}

func (e *emitter) finish(opts Options, resultType, root string) ([]byte, error) {
	var src bytes.Buffer
	src.WriteString("// Code generated by mosaic gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&src, "package %s\n\n", opts.Package)
	src.WriteString("import (\n")
	if e.useComponent {
		fmt.Fprintf(&src, "%q\n", componentImport)
	}
	if e.useContainer {
		fmt.Fprintf(&src, "%q\n", containerImport)
	}
	src.WriteString(")\n\n")
	fmt.Fprintf(&src, "func %s() %s {\n", opts.Func, resultType)
	src.Write(e.body.Bytes())
	fmt.Fprintf(&src, "return %s\n}\n", root)

	formatted, err := format.Source(src.Bytes(), format.Options{})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}
