// Package http exposes the instance control plane over a small REST API:
// create/reconfigure/show/activate/refresh/destroy instances, inject input,
// and broadcast notification events.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Francexi/browserhost/internal/infrastructure/logging"
	"github.com/Francexi/browserhost/internal/registry"
	"github.com/Francexi/browserhost/internal/shared/types"
	"github.com/Francexi/browserhost/internal/source"
)

// Handler serves the control API.
type Handler struct {
	driver    *source.Driver
	reg       *registry.Registry
	newSource func() *source.Source
	logger    *logging.Logger
}

// NewHandler creates the control API handler. newSource constructs and
// registers a fresh instance.
func NewHandler(driver *source.Driver, reg *registry.Registry, newSource func() *source.Source, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Handler{
		driver:    driver,
		reg:       reg,
		newSource: newSource,
		logger:    logger,
	}
}

// Register attaches all routes.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/instances", h.list)
	r.POST("/instances", h.create)
	r.GET("/instances/:id", h.get)
	r.PUT("/instances/:id/settings", h.updateSettings)
	r.PUT("/instances/:id/showing", h.setShowing)
	r.PUT("/instances/:id/active", h.setActive)
	r.POST("/instances/:id/refresh", h.refresh)
	r.POST("/instances/:id/input/key", h.injectKey)
	r.POST("/instances/:id/input/mouse", h.injectMouse)
	r.DELETE("/instances/:id", h.destroy)
	r.POST("/events", h.dispatchEvent)
}

func (h *Handler) list(c *gin.Context) {
	sources := h.driver.List()
	out := make([]source.Snapshot, 0, len(sources))
	for _, s := range sources {
		out = append(out, s.Snapshot())
	}
	c.JSON(http.StatusOK, gin.H{"instances": out})
}

func (h *Handler) create(c *gin.Context) {
	var blob types.Blob
	if err := c.ShouldBindJSON(&blob); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := h.newSource()
	s.Update(blob)
	h.driver.Attach(s)

	h.logger.Info("instance created", zap.String("instance", s.ID()))
	c.JSON(http.StatusCreated, s.Snapshot())
}

func (h *Handler) lookup(c *gin.Context) (*source.Source, bool) {
	s, ok := h.driver.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "instance not found"})
	}
	return s, ok
}

func (h *Handler) get(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

func (h *Handler) updateSettings(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	var blob types.Blob
	if err := c.ShouldBindJSON(&blob); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.Update(blob)
	c.JSON(http.StatusOK, s.Snapshot())
}

func (h *Handler) setShowing(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	var body struct {
		Showing bool `json:"showing"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.SetShowing(body.Showing)
	c.JSON(http.StatusOK, s.Snapshot())
}

func (h *Handler) setActive(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	var body struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.SetActive(body.Active)
	c.JSON(http.StatusOK, s.Snapshot())
}

func (h *Handler) refresh(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	s.Refresh()
	c.Status(http.StatusAccepted)
}

func (h *Handler) injectKey(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	var body struct {
		Keysym    uint32 `json:"keysym"`
		Scancode  uint32 `json:"scancode"`
		Modifiers uint32 `json:"modifiers"`
		Text      string `json:"text"`
		Up        bool   `json:"up"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.SendKeyClick(types.KeyEvent{
		NativeKeysym:    body.Keysym,
		NativeScancode:  body.Scancode,
		NativeModifiers: body.Modifiers,
		Text:            body.Text,
	}, body.Up)
	c.Status(http.StatusAccepted)
}

func (h *Handler) injectMouse(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	var body struct {
		Kind      string `json:"kind"` // move, click, wheel
		X         int32  `json:"x"`
		Y         int32  `json:"y"`
		Modifiers uint32 `json:"modifiers"`
		Button    int32  `json:"button"`
		Up        bool   `json:"up"`
		Clicks    int    `json:"clicks"`
		DeltaX    int    `json:"delta_x"`
		DeltaY    int    `json:"delta_y"`
		Leave     bool   `json:"leave"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev := types.MouseEvent{X: body.X, Y: body.Y, Modifiers: body.Modifiers}
	switch body.Kind {
	case "move":
		s.SendMouseMove(ev, body.Leave)
	case "click":
		clicks := body.Clicks
		if clicks <= 0 {
			clicks = 1
		}
		s.SendMouseClick(ev, types.MouseButton(body.Button), body.Up, clicks)
	case "wheel":
		s.SendMouseWheel(ev, body.DeltaX, body.DeltaY)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mouse event kind"})
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *Handler) destroy(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	h.driver.Detach(s.ID())
	s.Close()

	h.logger.Info("instance destroyed", zap.String("instance", s.ID()))
	c.Status(http.StatusNoContent)
}

func (h *Handler) dispatchEvent(c *gin.Context) {
	var body struct {
		Event   string      `json:"event"`
		Payload interface{} `json:"payload"`
		Target  string      `json:"target"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Event == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event name required"})
		return
	}

	var target registry.Member
	if body.Target != "" {
		m, ok := h.reg.Get(body.Target)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "instance not found"})
			return
		}
		target = m
	}

	if err := h.reg.Dispatch(body.Event, body.Payload, target); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusAccepted)
}
