package window

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/samuelyuan/go-openglproject/config"
)

type WindowHandler struct {
	glfwWindow   *glfw.Window
	inputHandler *InputHandler
	logger       *slog.Logger

	// Called with the framebuffer size after a resize
	onResize func(width, height int)

	firstFrame    bool
	deltaTime     float64
	lastFrameTime float64
}

// NewWindowHandler initializes glfw and opens a window with a current core
// profile context. Must be called from the main thread.
func NewWindowHandler(cfg config.Config, logger *slog.Logger) (*WindowHandler, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("Could not initialize glfw: %v", err)
	}

	// Initialize and create window
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GL.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GL.Minor)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glfwWindow, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("Could not create window: %v", err)
	}
	glfwWindow.MakeContextCurrent()

	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	windowHandler := &WindowHandler{
		glfwWindow:   glfwWindow,
		inputHandler: NewInputHandler(logger),
		logger:       logger,
		firstFrame:   true,
	}

	// Check for resize
	glfwWindow.SetFramebufferSizeCallback(windowHandler.resizeCallback)

	// Keyboard callback
	glfwWindow.SetKeyCallback(windowHandler.inputHandler.keyCallback)

	return windowHandler, nil
}

// OnResize sets the function called with the new framebuffer size.
func (windowHandler *WindowHandler) OnResize(fn func(width, height int)) {
	windowHandler.onResize = fn
}

func (windowHandler *WindowHandler) resizeCallback(w *glfw.Window, width int, height int) {
	if windowHandler.onResize != nil {
		windowHandler.onResize(width, height)
	}
}

// FramebufferSize is the drawable size in pixels, which differs from the
// window size on high-DPI displays.
func (windowHandler *WindowHandler) FramebufferSize() (int, int) {
	return windowHandler.glfwWindow.GetFramebufferSize()
}

// StartFrame presents the last frame and processes input.
func (windowHandler *WindowHandler) StartFrame() {
	windowHandler.glfwWindow.SwapBuffers()

	// Window events for keyboard
	glfw.PollEvents()

	if windowHandler.inputHandler.IsActive(PROGRAM_QUIT) {
		windowHandler.glfwWindow.SetShouldClose(true)
	}

	// Set frame time
	currentFrameTime := glfw.GetTime()

	if windowHandler.firstFrame {
		windowHandler.lastFrameTime = currentFrameTime
		windowHandler.firstFrame = false
	}

	windowHandler.deltaTime = currentFrameTime - windowHandler.lastFrameTime
	windowHandler.lastFrameTime = currentFrameTime
}

func (windowHandler *WindowHandler) ShouldClose() bool {
	return windowHandler.glfwWindow.ShouldClose()
}

// TimeSinceLastFrame is the seconds between the last two StartFrame calls.
func (windowHandler *WindowHandler) TimeSinceLastFrame() float64 {
	return windowHandler.deltaTime
}

// Terminate destroys the window and releases glfw.
func (windowHandler *WindowHandler) Terminate() {
	windowHandler.logger.Info(fmt.Sprintf("Program quit after %.2f seconds", glfw.GetTime()))
	windowHandler.glfwWindow.Destroy()
	glfw.Terminate()
}
