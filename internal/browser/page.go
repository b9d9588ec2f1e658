package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chromedp/chromedp"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/dom"
	"github.com/ymxu/resumefill/internal/fields"
)

// elementInfo is the snapshot one page element takes during discovery.
type elementInfo struct {
	Selector     string `json:"selector"`
	Tag          string `json:"tag"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	ID           string `json:"id"`
	Placeholder  string `json:"placeholder"`
	Autocomplete string `json:"autocomplete"`
	Label        string `json:"label"`
	Value        string `json:"value"`
	Enabled      bool   `json:"enabled"`
	Visible      bool   `json:"visible"`
	Focused      bool   `json:"focused"`
	RichText     bool   `json:"richText"`
}

// page implements dom.Page over one attached target.
type page struct {
	ctx context.Context
}

var _ dom.Page = (*page)(nil)

func (p *page) Elements(ctx context.Context) ([]dom.Element, error) {
	var infos []elementInfo
	if err := p.eval(ctx, collectScript(), &infos); err != nil {
		return nil, fmt.Errorf("collecting elements: %w", err)
	}

	out := make([]dom.Element, 0, len(infos))
	for _, info := range infos {
		out = append(out, &element{p: p, info: info})
	}
	return out, nil
}

func (p *page) ActiveElement(ctx context.Context) (dom.Element, error) {
	var infos []elementInfo
	if err := p.eval(ctx, collectScript(), &infos); err != nil {
		return nil, fmt.Errorf("collecting elements: %w", err)
	}
	for _, info := range infos {
		if info.Focused {
			return &element{p: p, info: info}, nil
		}
	}
	return nil, nil
}

func (p *page) QuerySelector(ctx context.Context, selector string) (dom.Element, error) {
	var info *elementInfo
	if err := p.eval(ctx, queryScript(selector), &info); err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, common.ErrNotFound)
	}
	if info == nil {
		return nil, fmt.Errorf("selector %q matched nothing: %w", selector, common.ErrNotFound)
	}
	return &element{p: p, info: *info}, nil
}

func (p *page) eval(ctx context.Context, js string, out any) error {
	runCtx := p.ctx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithDeadline(p.ctx, deadline)
		defer cancel()
	}
	return chromedp.Run(runCtx, chromedp.Evaluate(js, out))
}

// element implements dom.Element. The descriptive accessors read the
// discovery snapshot; the mutating operations re-resolve the selector on
// the live page.
type element struct {
	p    *page
	info elementInfo
}

var _ dom.Element = (*element)(nil)

func (e *element) Descriptor() fields.Descriptor {
	return fields.Descriptor{
		Name:         e.info.Name,
		ID:           e.info.ID,
		Placeholder:  e.info.Placeholder,
		Autocomplete: e.info.Autocomplete,
		Label:        e.info.Label,
		InputType:    e.info.Type,
	}
}

func (e *element) Kind() dom.Kind {
	switch {
	case e.info.RichText:
		return dom.KindRichText
	case e.info.Tag == "textarea":
		return dom.KindTextArea
	default:
		return dom.KindInput
	}
}

func (e *element) Value() string    { return e.info.Value }
func (e *element) Visible() bool    { return e.info.Visible }
func (e *element) Selector() string { return e.info.Selector }

func (e *element) Editable() bool {
	if !e.info.Enabled {
		return false
	}
	if e.info.Tag == "input" {
		return dom.EditableInputType(e.info.Type)
	}
	return true
}

func (e *element) Focus(ctx context.Context) error {
	return e.act(ctx, `(() => {
		const el = document.querySelector(`+jsArg(e.info.Selector)+`);
		if (!el) return false;
		el.focus();
		return true;
	})()`)
}

func (e *element) SetValue(ctx context.Context, text string) error {
	return e.act(ctx, "(() => {"+helpersJS+`
		const el = document.querySelector(`+jsArg(e.info.Selector)+`);
		if (!el) return false;
		const text = `+jsArg(text)+`;
		if (el.isContentEditable) {
			el.innerHTML = '';
			text.split('\n').forEach((line, i) => {
				if (i > 0) el.appendChild(document.createElement('br'));
				if (line) el.appendChild(document.createTextNode(line));
			});
			return true;
		}
		setNative(el, text);
		return true;
	})()`)
}

func (e *element) NotifyChanged(ctx context.Context) error {
	return e.act(ctx, "(() => {"+helpersJS+`
		const el = document.querySelector(`+jsArg(e.info.Selector)+`);
		if (!el) return false;
		if (!el.isContentEditable) setNative(el, el.value);
		el.dispatchEvent(new Event('input', { bubbles: true }));
		el.dispatchEvent(new Event('change', { bubbles: true }));
		return true;
	})()`)
}

func (e *element) ScrollIntoView(ctx context.Context) error {
	return e.act(ctx, `(() => {
		const el = document.querySelector(`+jsArg(e.info.Selector)+`);
		if (!el) return false;
		el.scrollIntoView({ block: 'center' });
		return true;
	})()`)
}

func (e *element) act(ctx context.Context, js string) error {
	var ok bool
	if err := e.p.eval(ctx, js, &ok); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("element %q vanished: %w", e.info.Selector, common.ErrNotFound)
	}
	return nil
}

// jsArg embeds a Go value into a script as a JSON literal.
func jsArg(v any) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}

// helpersJS holds the shared in-page helper functions. setNative invokes
// the element's native value setter so reactive frameworks that wrap the
// setter observe the change.
const helpersJS = `
	const setNative = (el, value) => {
		const proto = el.tagName === 'TEXTAREA'
			? HTMLTextAreaElement.prototype
			: HTMLInputElement.prototype;
		const desc = Object.getOwnPropertyDescriptor(proto, 'value');
		if (desc && desc.set) { desc.set.call(el, value); } else { el.value = value; }
	};
	const cssEscape = (s) => (window.CSS && CSS.escape) ? CSS.escape(s) : s;
	const makeSelector = (el, tag) => {
		if (el.id) return '#' + cssEscape(el.id);
		const name = el.getAttribute('name');
		if (name) return tag + '[name="' + name + '"]';
		const siblings = el.parentElement
			? Array.from(el.parentElement.children).filter((c) => c.tagName === el.tagName)
			: [el];
		return tag + ':nth-of-type(' + (siblings.indexOf(el) + 1) + ')';
	};
	const labelFor = (el) => {
		if (el.labels && el.labels.length) return el.labels[0].textContent.trim();
		const wrap = el.closest('label');
		if (wrap) return wrap.textContent.trim();
		const prev = el.previousElementSibling;
		if (prev && prev.tagName === 'LABEL') return prev.textContent.trim();
		return el.getAttribute('aria-label') || '';
	};
	const isVisible = (el) => {
		const rect = el.getBoundingClientRect();
		const style = window.getComputedStyle(el);
		return (rect.width > 0 || rect.height > 0) &&
			style.visibility !== 'hidden' && style.display !== 'none' &&
			style.opacity !== '0';
	};
	const describe = (el) => {
		const tag = el.tagName.toLowerCase();
		const rich = tag !== 'input' && tag !== 'textarea';
		return {
			selector: makeSelector(el, tag),
			tag: tag,
			type: (el.getAttribute('type') || '').toLowerCase(),
			name: el.getAttribute('name') || '',
			id: el.id || '',
			placeholder: el.getAttribute('placeholder') || '',
			autocomplete: el.getAttribute('autocomplete') || '',
			label: labelFor(el),
			value: rich ? (el.innerText || '') : (el.value || ''),
			enabled: rich ? el.isContentEditable : !(el.disabled || el.readOnly),
			visible: isVisible(el),
			focused: document.activeElement === el,
			richText: rich
		};
	};
`

func collectScript() string {
	return "(() => {" + helpersJS + `
		const nodes = Array.from(
			document.querySelectorAll('input, textarea, [contenteditable="true"]'));
		const seen = new Set();
		const out = [];
		nodes.forEach((el) => {
			if (seen.has(el)) return;
			seen.add(el);
			out.push(describe(el));
		});
		return out;
	})()`
}

func queryScript(selector string) string {
	return "(() => {" + helpersJS + `
		let el = null;
		try {
			el = document.querySelector(` + jsArg(selector) + `);
		} catch (_) {
			return null;
		}
		if (!el) return null;
		return describe(el);
	})()`
}
