package client

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/cubeworld/engine/util"
)

func (a *CubeGame) handleKeyEvents(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		a.Window.SetShouldClose(true)
		return
	}
	if key == glfw.KeyP && action == glfw.Release {
		a.toggleCursorGrab()
		return
	}
	if key == glfw.KeyF1 && action == glfw.Release {
		a.scene.ToggleTestTriangle()
		return
	}
	if key == glfw.KeyF5 && action == glfw.Release {
		if err := a.world.SaveWorld(a.settings.WorldFile); err != nil {
			util.LogIOError(err.Error())
		}
		return
	}
	if key == glfw.KeyF8 && action == glfw.Release {
		println(a.timer.String())
		println(a.camera.DebugString())
		return
	}
	if a.cursorGrabbed {
		a.scene.controller.HandleKey(key, action != glfw.Release)
	}
}

func (a *CubeGame) handleMousePosEvents(xpos float64, ypos float64) {
	if a.lastMousePosX == xpos && a.lastMousePosY == ypos {
		return
	}
	if a.cursorGrabbed {
		a.scene.controller.MouseMove(xpos-a.lastMousePosX, ypos-a.lastMousePosY)
	}
	a.lastMousePosX = xpos
	a.lastMousePosY = ypos
}

func (a *CubeGame) handleScrollEvents(xoff float64, yoff float64) {
	if a.cursorGrabbed {
		a.scene.controller.MouseWheel(yoff)
	}
}

func (a *CubeGame) handleResize(width int, height int) {
	if err := a.camera.SetViewport(width, height); err != nil {
		util.LogGlError(fmt.Sprintf("keeping the previous projection: %s", err))
	}
}

func (a *CubeGame) toggleCursorGrab() {
	a.scene.controller.Reset()
	if a.cursorGrabbed {
		a.freeMouse()
	} else {
		a.captureMouse()
	}
}

func (a *CubeGame) captureMouse() {
	a.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		a.Window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	a.cursorGrabbed = true
}

func (a *CubeGame) freeMouse() {
	a.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	if glfw.RawMouseMotionSupported() {
		a.Window.SetInputMode(glfw.RawMouseMotion, glfw.False)
	}
	a.cursorGrabbed = false
}
