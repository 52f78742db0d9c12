package webview

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/Francexi/browserhost/internal/engine"
)

var errInterrupted = errors.New("script interrupted")

// Engine creates goja-backed browser sessions.
type Engine struct {
	logger        *zap.Logger
	scriptTimeout time.Duration
}

// New creates the engine. scriptTimeout bounds each script invocation.
func New(logger *zap.Logger, scriptTimeout time.Duration) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if scriptTimeout <= 0 {
		scriptTimeout = 5 * time.Second
	}
	return &Engine{logger: logger, scriptTimeout: scriptTimeout}
}

// CreateBrowser implements engine.Engine.
func (e *Engine) CreateBrowser(p engine.CreateParams) (engine.Browser, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("webview: invalid dimensions %dx%d", p.Width, p.Height)
	}

	b := &Browser{
		eng:     e,
		params:  p,
		client:  p.Client,
		visible: true,
	}
	if err := b.boot(); err != nil {
		return nil, err
	}
	return b, nil
}

// Browser is one goja-backed session. Engine-thread only.
type Browser struct {
	eng    *Engine
	params engine.CreateParams
	client engine.Client

	vm        *goja.Runtime
	listeners map[string][]goja.Callable
	styles    []string

	visible bool
	hidden  bool
	active  bool
	closed  bool
}

func (b *Browser) boot() error {
	b.vm = goja.New()
	b.vm.SetMaxCallStackSize(1024)
	b.listeners = make(map[string][]goja.Callable)
	b.styles = nil

	if err := b.setupGlobals(); err != nil {
		return err
	}
	if b.params.InjectCSS != "" {
		b.styles = append(b.styles, b.params.InjectCSS)
	}
	return nil
}

func (b *Browser) setupGlobals() error {
	vm := b.vm

	console := vm.NewObject()
	for _, level := range []string{"log", "warn", "error"} {
		level := level
		if err := console.Set(level, func(call goja.FunctionCall) goja.Value {
			msg := ""
			for i, arg := range call.Arguments {
				if i > 0 {
					msg += " "
				}
				msg += arg.String()
			}
			if c := b.client; c != nil {
				c.OnConsoleMessage(level, msg)
			}
			return goja.Undefined()
		}); err != nil {
			return err
		}
	}
	if err := vm.Set("console", console); err != nil {
		return err
	}

	window := vm.NewObject()
	if err := window.Set("addEventListener", func(name string, cb goja.Callable) {
		b.listeners[name] = append(b.listeners[name], cb)
	}); err != nil {
		return err
	}
	if err := vm.Set("window", window); err != nil {
		return err
	}
	if err := vm.GlobalObject().Set("addEventListener", func(name string, cb goja.Callable) {
		b.listeners[name] = append(b.listeners[name], cb)
	}); err != nil {
		return err
	}

	document := vm.NewObject()
	if err := document.Set("URL", b.params.URL); err != nil {
		return err
	}
	if err := document.Set("visibilityState", b.visibilityState()); err != nil {
		return err
	}
	return vm.Set("document", document)
}

func (b *Browser) visibilityState() string {
	if b.visible && !b.hidden {
		return "visible"
	}
	return "hidden"
}

// Evaluate runs a script in the page context with the engine's timeout.
func (b *Browser) Evaluate(script string) (goja.Value, error) {
	if b.closed {
		return nil, errors.New("webview: browser closed")
	}

	timer := time.AfterFunc(b.eng.scriptTimeout, func() {
		b.vm.Interrupt(errInterrupted)
	})
	defer func() {
		timer.Stop()
		b.vm.ClearInterrupt()
	}()

	return b.vm.RunString(script)
}

func (b *Browser) fire(name string, detail goja.Value) {
	cbs := b.listeners[name]
	if len(cbs) == 0 {
		return
	}

	event := b.vm.NewObject()
	_ = event.Set("type", name)
	if detail != nil {
		_ = event.Set("detail", detail)
	}

	timer := time.AfterFunc(b.eng.scriptTimeout, func() {
		b.vm.Interrupt(errInterrupted)
	})
	defer func() {
		timer.Stop()
		b.vm.ClearInterrupt()
	}()

	for _, cb := range cbs {
		if _, err := cb(goja.Undefined(), event); err != nil {
			b.eng.logger.Debug("listener failed",
				zap.String("event", name), zap.Error(err))
		}
	}
}

func (b *Browser) syncVisibility() {
	if doc := b.vm.GlobalObject().Get("document"); doc != nil {
		if obj, ok := doc.(*goja.Object); ok {
			_ = obj.Set("visibilityState", b.visibilityState())
		}
	}
	b.fire("visibilitychange", nil)
}

// SendMessage implements engine.Browser.
func (b *Browser) SendMessage(name string, args ...interface{}) {
	if b.closed {
		return
	}

	switch name {
	case engine.MsgVisibility:
		if len(args) == 1 {
			if v, ok := args[0].(bool); ok {
				b.visible = v
				b.syncVisibility()
			}
		}
	case engine.MsgActive:
		if len(args) == 1 {
			if v, ok := args[0].(bool); ok {
				b.active = v
			}
		}
	case engine.MsgDispatchEvent:
		if len(args) == 2 {
			event, _ := args[0].(string)
			body, _ := args[1].(string)
			b.dispatchJSEvent(event, body)
		}
	}
}

func (b *Browser) dispatchJSEvent(event, body string) {
	var detail interface{}
	if body != "" {
		if err := sonic.Unmarshal([]byte(body), &detail); err != nil {
			b.eng.logger.Debug("bad event payload",
				zap.String("event", event), zap.Error(err))
			return
		}
	}
	b.fire(event, b.vm.ToValue(detail))
}

// SendKeyEvent implements engine.Browser.
func (b *Browser) SendKeyEvent(e engine.KeyEvent) {
	if b.closed {
		return
	}

	name := "keydown"
	switch e.Type {
	case engine.KeyUp:
		name = "keyup"
	case engine.KeyChar:
		name = "keypress"
	}

	event := b.vm.NewObject()
	_ = event.Set("keyCode", uint32(e.VirtualKey))
	_ = event.Set("nativeCode", e.NativeKeyCode)
	_ = event.Set("modifiers", e.Modifiers)
	if e.Character != 0 {
		_ = event.Set("key", string(e.Character))
	}
	b.fire(name, event)
}

// SendMouseClick implements engine.Browser.
func (b *Browser) SendMouseClick(e engine.MouseEvent, button int32, up bool, clickCount int) {
	name := "mousedown"
	if up {
		name = "mouseup"
	}
	b.fireMouse(name, e, map[string]interface{}{"button": button, "clicks": clickCount})
}

// SendMouseMove implements engine.Browser.
func (b *Browser) SendMouseMove(e engine.MouseEvent, leave bool) {
	name := "mousemove"
	if leave {
		name = "mouseleave"
	}
	b.fireMouse(name, e, nil)
}

// SendMouseWheel implements engine.Browser.
func (b *Browser) SendMouseWheel(e engine.MouseEvent, dx, dy int) {
	b.fireMouse("wheel", e, map[string]interface{}{"deltaX": dx, "deltaY": dy})
}

func (b *Browser) fireMouse(name string, e engine.MouseEvent, extra map[string]interface{}) {
	if b.closed {
		return
	}

	event := b.vm.NewObject()
	_ = event.Set("x", e.X)
	_ = event.Set("y", e.Y)
	_ = event.Set("modifiers", e.Modifiers)
	for k, v := range extra {
		_ = event.Set(k, v)
	}
	b.fire(name, event)
}

// SendFocus implements engine.Browser.
func (b *Browser) SendFocus(focus bool) {
	if b.closed {
		return
	}
	if focus {
		b.fire("focus", nil)
	} else {
		b.fire("blur", nil)
	}
}

// SendExternalBeginFrame implements engine.Browser: paints one frame when
// externally paced.
func (b *Browser) SendExternalBeginFrame() {
	b.paint()
}

// WasHidden implements engine.Browser.
func (b *Browser) WasHidden(hidden bool) {
	if b.closed {
		return
	}
	b.hidden = hidden
	b.syncVisibility()
}

// Invalidate implements engine.Browser: forces a repaint.
func (b *Browser) Invalidate() {
	b.paint()
}

// paint delivers a frame buffer to the client. Actual page rasterization is
// outside this engine; the buffer is a blank surface of the configured size.
func (b *Browser) paint() {
	if b.closed || b.hidden {
		return
	}
	c := b.client
	if c == nil {
		return
	}
	c.OnFrame(b.params.Width, b.params.Height, make([]byte, b.params.Width*b.params.Height*4))
}

// ReloadIgnoreCache implements engine.Browser: resets the page context.
func (b *Browser) ReloadIgnoreCache() {
	if b.closed {
		return
	}
	if err := b.boot(); err != nil {
		b.eng.logger.Warn("reload failed", zap.Error(err))
	}
}

// DetachClient implements engine.Browser.
func (b *Browser) DetachClient() {
	b.client = nil
}

// Close implements engine.Browser. The handle is dead afterwards; late tasks
// holding it degrade to no-ops.
func (b *Browser) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.client = nil
	b.listeners = nil
	b.vm = nil
}

// Styles returns the injected style sheets, test hook for CSS injection.
func (b *Browser) Styles() []string {
	return b.styles
}

// Active reports the last delivered active state.
func (b *Browser) Active() bool { return b.active }
